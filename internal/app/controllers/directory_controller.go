package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/derin/uniportal/internal/app/models/dto"
	"github.com/derin/uniportal/internal/app/store"
	"github.com/derin/uniportal/internal/middleware"
	"github.com/derin/uniportal/internal/pkg/apperrors"
)

// DirectoryController serves the roster listings and faculty attendance
// entry. Attendance is keyed by course code, so the course id from the
// request is resolved against the catalog first.
type DirectoryController struct {
	directory *store.Directory
	courses   *store.CourseStore
}

// NewDirectoryController creates a new DirectoryController.
func NewDirectoryController(directory *store.Directory, courses *store.CourseStore) *DirectoryController {
	return &DirectoryController{directory: directory, courses: courses}
}

// ListStudents returns the full student roster.
// @Summary List all students
// @Tags directory
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Router /admin/students [get]
func (c *DirectoryController) ListStudents(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.directory.Students(),
		Timestamp: time.Now(),
	})
}

// ListFaculty returns the full faculty roster.
func (c *DirectoryController) ListFaculty(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.directory.Faculty(),
		Timestamp: time.Now(),
	})
}

// GetStudent returns one student by id.
func (c *DirectoryController) GetStudent(ctx *gin.Context) {
	student, ok := c.directory.StudentByID(ctx.Param("id"))
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrResourceNotFound)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// RecordAttendance saves attendance percentages for one course. Unknown
// student ids in the entries are skipped.
// @Summary Record attendance for a course
// @Tags faculty
// @Accept json
// @Produce json
// @Param request body dto.AttendanceUpdateRequest true "Per-student percentages"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /faculty/attendance [post]
func (c *DirectoryController) RecordAttendance(ctx *gin.Context) {
	var req dto.AttendanceUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid attendance data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, ok := c.courses.CourseByID(req.CourseID)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrResourceNotFound)
		return
	}

	c.directory.RecordAttendance(course.CourseID, req.Entries)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Attendance saved successfully!"},
		Timestamp: time.Now(),
	})
}
