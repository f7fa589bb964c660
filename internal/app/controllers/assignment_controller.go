package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/derin/uniportal/internal/app/models/dto"
	"github.com/derin/uniportal/internal/app/store"
)

// AssignmentController exposes assignment CRUD for faculty and the course
// assignment listing both roles read. An assignment keeps working after
// its course is deleted; listing by the stale course id still finds it.
type AssignmentController struct {
	courses *store.CourseStore
}

// NewAssignmentController creates a new AssignmentController.
func NewAssignmentController(courses *store.CourseStore) *AssignmentController {
	return &AssignmentController{courses: courses}
}

// CourseAssignments lists assignments attached to a course.
// @Summary List assignments of a course
// @Tags assignments
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Assignment}
// @Router /faculty/courses/{id}/assignments [get]
func (c *AssignmentController) CourseAssignments(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.courses.CourseAssignments(ctx.Param("id")),
		Timestamp: time.Now(),
	})
}

// CreateAssignment adds an assignment. createdAt is stamped here and
// never changes afterwards.
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid assignment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	assignment := c.courses.AddAssignment(ctx.Request.Context(), req)
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      assignment,
		Timestamp: time.Now(),
	})
}

// UpdateAssignment merges a partial update into an assignment.
func (c *AssignmentController) UpdateAssignment(ctx *gin.Context) {
	var req dto.UpdateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid assignment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	c.courses.UpdateAssignment(ctx.Request.Context(), ctx.Param("id"), req)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Assignment updated successfully!"},
		Timestamp: time.Now(),
	})
}

// DeleteAssignment removes an assignment.
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	c.courses.DeleteAssignment(ctx.Request.Context(), ctx.Param("id"))
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Assignment deleted successfully!"},
		Timestamp: time.Now(),
	})
}
