package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/derin/uniportal/internal/app/controllers"
	"github.com/derin/uniportal/internal/app/models"
	"github.com/derin/uniportal/internal/app/models/dto"
	"github.com/derin/uniportal/internal/middleware"
	"github.com/derin/uniportal/internal/pkg/notify"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	courseController *controllers.CourseController,
	assignmentController *controllers.AssignmentController,
	directoryController *controllers.DirectoryController,
	notifyHandler *notify.Handler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Landing view. Unauthorized navigation anywhere in the tree is sent
	// back here with a 303.
	router.GET(middleware.LandingPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Data: gin.H{"name": "uniportal", "login": "/api/v1/auth/login"},
		})
	})
	router.NoRoute(func(c *gin.Context) {
		c.Header("Location", middleware.LandingPath)
		c.JSON(http.StatusSeeOther, dto.APIResponse{
			Data: gin.H{"redirect": middleware.LandingPath},
		})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.SessionRequired())
	{
		authenticated.GET("/auth/session", authController.Session)
		authenticated.GET("/profile", profileController.GetProfile)
		authenticated.GET("/ws/notifications", notifyHandler.HandleConnection)
	}

	// --- Student routes ---
	student := v1.Group("/student")
	student.Use(authMiddleware.RoleRequired(models.RoleStudent))
	{
		student.PUT("/profile", profileController.UpdateStudentProfile)

		studentCourses := student.Group("/courses")
		{
			studentCourses.GET("/available", courseController.AvailableCourses)
			studentCourses.GET("/enrolled", courseController.EnrolledCourses)
			studentCourses.POST("/:id/enroll", courseController.Enroll)
			studentCourses.POST("/:id/unenroll", courseController.Unenroll)
			studentCourses.GET("/:id/assignments", assignmentController.CourseAssignments)
		}
	}

	// --- Faculty routes ---
	faculty := v1.Group("/faculty")
	faculty.Use(authMiddleware.RoleRequired(models.RoleFaculty))
	{
		faculty.PUT("/profile", profileController.UpdateFacultyProfile)
		faculty.POST("/attendance", directoryController.RecordAttendance)

		facultyCourses := faculty.Group("/courses")
		{
			facultyCourses.GET("", courseController.FacultyCourses)
			facultyCourses.GET("/:id/students", courseController.CourseStudents)
			facultyCourses.GET("/:id/assignments", assignmentController.CourseAssignments)
		}

		assignments := faculty.Group("/assignments")
		{
			assignments.POST("", assignmentController.CreateAssignment)
			assignments.PUT("/:id", assignmentController.UpdateAssignment)
			assignments.DELETE("/:id", assignmentController.DeleteAssignment)
		}
	}

	// --- Admin routes ---
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.PUT("/profile", profileController.UpdateAdminProfile)
		admin.GET("/students", directoryController.ListStudents)
		admin.GET("/students/:id", directoryController.GetStudent)
		admin.GET("/faculty", directoryController.ListFaculty)

		adminCourses := admin.Group("/courses")
		{
			adminCourses.GET("", courseController.ListCourses)
			adminCourses.GET("/:id", courseController.GetCourse)
			adminCourses.POST("", courseController.CreateCourse)
			adminCourses.PUT("/:id", courseController.UpdateCourse)
			adminCourses.DELETE("/:id", courseController.DeleteCourse)
			adminCourses.PUT("/:id/faculty", courseController.AssignFaculty)
			adminCourses.POST("/:id/enroll", courseController.AdminEnroll)
			adminCourses.POST("/:id/unenroll", courseController.AdminUnenroll)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
