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

// CourseController exposes the course collection: admin CRUD and
// assignment of faculty, student enrollment, and the derived views each
// role reads. Mutations are total; an unknown id quietly changes nothing
// and still reports success, matching the store contract.
type CourseController struct {
	courses  *store.CourseStore
	sessions *store.SessionStore
}

// NewCourseController creates a new CourseController.
func NewCourseController(courses *store.CourseStore, sessions *store.SessionStore) *CourseController {
	return &CourseController{courses: courses, sessions: sessions}
}

// ListCourses returns the whole catalog.
// @Summary List all courses
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Router /admin/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.courses.Courses(),
		Timestamp: time.Now(),
	})
}

// GetCourse returns one course by id.
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, ok := c.courses.CourseByID(ctx.Param("id"))
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrResourceNotFound)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// CreateCourse adds a course to the catalog.
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course fields"
// @Success 201 {object} dto.APIResponse{data=models.Course}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /admin/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course := c.courses.AddCourse(ctx.Request.Context(), req)
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// UpdateCourse merges a partial update into a course.
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	c.courses.UpdateCourse(ctx.Request.Context(), ctx.Param("id"), req)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Course updated successfully!"},
		Timestamp: time.Now(),
	})
}

// DeleteCourse removes a course. Assignments under it stay behind.
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	c.courses.DeleteCourse(ctx.Request.Context(), ctx.Param("id"))
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Course deleted successfully!"},
		Timestamp: time.Now(),
	})
}

// AssignFaculty sets the owning faculty of a course.
func (c *CourseController) AssignFaculty(ctx *gin.Context) {
	var req dto.AssignFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid assignment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	c.courses.AssignFaculty(ctx.Request.Context(), ctx.Param("id"), req.FacultyID)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Faculty assigned to course successfully!"},
		Timestamp: time.Now(),
	})
}

// AvailableCourses lists courses the active student is not enrolled in.
// @Summary List available courses
// @Tags student
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Router /student/courses/available [get]
func (c *CourseController) AvailableCourses(ctx *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(ctx)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.courses.AvailableCourses(principal.Base().ID),
		Timestamp: time.Now(),
	})
}

// EnrolledCourses lists courses the active student is enrolled in.
func (c *CourseController) EnrolledCourses(ctx *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(ctx)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.courses.EnrolledCourses(principal.Base().ID),
		Timestamp: time.Now(),
	})
}

// Enroll adds the active student to a course. Idempotent.
func (c *CourseController) Enroll(ctx *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(ctx)
	c.courses.EnrollStudent(ctx.Request.Context(), ctx.Param("id"), principal.Base().ID)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Enrolled in course successfully!"},
		Timestamp: time.Now(),
	})
}

// Unenroll removes the active student from a course. Idempotent.
func (c *CourseController) Unenroll(ctx *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(ctx)
	c.courses.UnenrollStudent(ctx.Request.Context(), ctx.Param("id"), principal.Base().ID)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Unenrolled from course successfully!"},
		Timestamp: time.Now(),
	})
}

// AdminEnroll enrolls an arbitrary student id on a course. No roster
// check; a bogus id simply joins the set.
func (c *CourseController) AdminEnroll(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	c.courses.EnrollStudent(ctx.Request.Context(), ctx.Param("id"), req.StudentID)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Enrolled in course successfully!"},
		Timestamp: time.Now(),
	})
}

// AdminUnenroll removes an arbitrary student id from a course.
func (c *CourseController) AdminUnenroll(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	c.courses.UnenrollStudent(ctx.Request.Context(), ctx.Param("id"), req.StudentID)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Unenrolled from course successfully!"},
		Timestamp: time.Now(),
	})
}

// FacultyCourses lists courses owned by the active faculty member.
func (c *CourseController) FacultyCourses(ctx *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(ctx)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.courses.FacultyCourses(principal.Base().ID),
		Timestamp: time.Now(),
	})
}

// CourseStudents lists the student ids enrolled on a course.
func (c *CourseController) CourseStudents(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.courses.StudentsByCourse(ctx.Param("id")),
		Timestamp: time.Now(),
	})
}
