package routes

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/derin/uniportal/internal/app/controllers"
	appStore "github.com/derin/uniportal/internal/app/store"
	"github.com/derin/uniportal/internal/middleware"
	"github.com/derin/uniportal/internal/pkg/notify"
	"github.com/derin/uniportal/internal/seed"
	"github.com/derin/uniportal/internal/storage/memstore"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	middleware.RegisterValidations()

	ctx := context.Background()
	st := memstore.New()
	data := seed.Default()
	lgr := zerolog.Nop()

	hub := notify.NewHub(lgr)
	go hub.Run()

	sessions := appStore.NewSessionStore(ctx, st, data, "", lgr)
	courses := appStore.NewCourseStore(ctx, st, data, hub, "", lgr)
	directory := appStore.NewDirectory(data)

	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(sessions),
		controllers.NewProfileController(sessions),
		controllers.NewCourseController(courses, sessions),
		controllers.NewAssignmentController(courses),
		controllers.NewDirectoryController(directory, courses),
		notify.NewHandler(hub, lgr),
		middleware.NewAuthMiddleware(sessions),
	)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, router *gin.Engine, email string) {
	t.Helper()
	rec := doJSON(router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"`+email+`","password":"password"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthIsPublic(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnauthenticatedIsSentToLanding(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/v1/auth/session", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestLoginUnlocksSessionRoutes(t *testing.T) {
	router := newTestRouter(t)
	login(t, router, "student@example.com")

	rec := doJSON(router, http.MethodGet, "/api/v1/auth/session", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Anita Desai")

	rec = doJSON(router, http.MethodGet, "/api/v1/student/courses/enrolled", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Data Structures")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"student@example.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTH_001")
}

func TestWrongRoleIsSentToLanding(t *testing.T) {
	router := newTestRouter(t)
	login(t, router, "student@example.com")

	rec := doJSON(router, http.MethodGet, "/api/v1/admin/courses", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestLogoutLocksRoutesAgain(t *testing.T) {
	router := newTestRouter(t)
	login(t, router, "faculty@example.com")

	rec := doJSON(router, http.MethodGet, "/api/v1/faculty/courses", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodPost, "/api/v1/auth/logout", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodGet, "/api/v1/faculty/courses", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestAdminCourseCRUD(t *testing.T) {
	router := newTestRouter(t)
	login(t, router, "admin@example.com")

	rec := doJSON(router, http.MethodPost, "/api/v1/admin/courses",
		`{"courseId":"PH301","name":"Quantum Mechanics"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "PH301")

	rec = doJSON(router, http.MethodPost, "/api/v1/admin/courses",
		`{"courseId":"  ","name":"Blank Code"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_001")

	rec = doJSON(router, http.MethodDelete, "/api/v1/admin/courses/c4", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Course deleted successfully!")

	rec = doJSON(router, http.MethodGet, "/api/v1/admin/courses/c4", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStudentEnrollFlow(t *testing.T) {
	router := newTestRouter(t)
	login(t, router, "student@example.com")

	rec := doJSON(router, http.MethodPost, "/api/v1/student/courses/c1/enroll", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Enrolled in course successfully!")

	rec = doJSON(router, http.MethodGet, "/api/v1/student/courses/enrolled", "")
	assert.Contains(t, rec.Body.String(), "Introduction to Programming")

	rec = doJSON(router, http.MethodPost, "/api/v1/student/courses/c1/unenroll", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodGet, "/api/v1/student/courses/available", "")
	assert.Contains(t, rec.Body.String(), "Introduction to Programming")
}

func TestFacultyAttendance(t *testing.T) {
	router := newTestRouter(t)
	login(t, router, "faculty@example.com")

	rec := doJSON(router, http.MethodPost, "/api/v1/faculty/attendance",
		`{"courseId":"c2","entries":{"1":91,"2":77}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Attendance saved successfully!")

	rec = doJSON(router, http.MethodPost, "/api/v1/faculty/attendance",
		`{"courseId":"missing","entries":{"1":91}}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(router, http.MethodPost, "/api/v1/faculty/attendance",
		`{"courseId":"c2","entries":{"1":250}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfileUpdateGoesThroughTypedRoute(t *testing.T) {
	router := newTestRouter(t)
	login(t, router, "student@example.com")

	rec := doJSON(router, http.MethodPut, "/api/v1/student/profile",
		`{"name":"Anita D.","gender":"Female"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Anita D.")

	// A student cannot reach the faculty update route at all.
	rec = doJSON(router, http.MethodPut, "/api/v1/faculty/profile", `{"name":"X"}`)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}
