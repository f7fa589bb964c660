package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/derin/uniportal/internal/app/models/dto"
	"github.com/derin/uniportal/internal/app/store"
	"github.com/derin/uniportal/internal/middleware"
)

// ProfileController serves and updates the active principal's profile.
// Updates are typed per role; the route tree guarantees the role matches,
// the store enforces it again.
type ProfileController struct {
	sessions *store.SessionStore
}

// NewProfileController creates a new ProfileController.
func NewProfileController(sessions *store.SessionStore) *ProfileController {
	return &ProfileController{sessions: sessions}
}

// GetProfile returns the active principal in full.
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(ctx)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      principal,
		Timestamp: time.Now(),
	})
}

// UpdateStudentProfile applies a student profile update.
// @Summary Update student profile
// @Tags student
// @Accept json
// @Produce json
// @Param request body dto.UpdateStudentProfileRequest true "Fields to merge"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /student/profile [put]
func (c *ProfileController) UpdateStudentProfile(ctx *gin.Context) {
	var req dto.UpdateStudentProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid profile data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	principal, err := c.sessions.UpdateStudentProfile(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      principal,
		Timestamp: time.Now(),
	})
}

// UpdateFacultyProfile applies a faculty profile update.
func (c *ProfileController) UpdateFacultyProfile(ctx *gin.Context) {
	var req dto.UpdateFacultyProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid profile data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	principal, err := c.sessions.UpdateFacultyProfile(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      principal,
		Timestamp: time.Now(),
	})
}

// UpdateAdminProfile applies an admin profile update.
func (c *ProfileController) UpdateAdminProfile(ctx *gin.Context) {
	var req dto.UpdateAdminProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid profile data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	principal, err := c.sessions.UpdateAdminProfile(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      principal,
		Timestamp: time.Now(),
	})
}
