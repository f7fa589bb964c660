package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/derin/uniportal/internal/app/models/dto"
	"github.com/derin/uniportal/internal/app/store"
	"github.com/derin/uniportal/internal/middleware"
)

// AuthController handles login and logout against the session store.
type AuthController struct {
	sessions *store.SessionStore
}

// NewAuthController creates a new AuthController.
func NewAuthController(sessions *store.SessionStore) *AuthController {
	return &AuthController{sessions: sessions}
}

// Login authenticates against the fixed credential list.
// @Summary Log in
// @Description Resolves the credentials and activates the matching principal
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	role, userID, err := c.sessions.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.LoginResponse{Role: string(role), UserID: userID},
		Timestamp: time.Now(),
	})
}

// Logout clears the active session. Always succeeds, authenticated or not.
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.sessions.Logout(ctx.Request.Context())

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Logged out"},
		Timestamp: time.Now(),
	})
}

// Session returns the active principal.
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 303 {object} dto.ErrorResponse "No active session"
// @Router /auth/session [get]
func (c *AuthController) Session(ctx *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(ctx)

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      principal,
		Timestamp: time.Now(),
	})
}
