package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/derin/uniportal/internal/app/models"
	"github.com/derin/uniportal/internal/app/models/dto"
	"github.com/derin/uniportal/internal/app/store"
)

// LandingPath is where unauthorized navigation is sent back to.
const LandingPath = "/"

// AuthMiddleware gates role-scoped route trees on the session store. The
// check is synchronous and has exactly two outcomes: admitted, or sent
// back to the landing view.
type AuthMiddleware struct {
	sessions *store.SessionStore
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(sessions *store.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// SessionRequired admits any authenticated principal.
func (m *AuthMiddleware) SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := m.sessions.Current()
		if principal == nil {
			redirectToLanding(c, "Authentication required")
			return
		}

		c.Set("principal", principal)
		c.Set("userID", principal.Base().ID)
		c.Set("role", principal.Base().Role)
		c.Next()
	}
}

// RoleRequired admits only an authenticated principal of the given role.
// Everything else, including an authenticated principal of another role,
// goes back to the landing view.
func (m *AuthMiddleware) RoleRequired(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := m.sessions.Current()
		if principal == nil {
			redirectToLanding(c, "Authentication required")
			return
		}
		if principal.Base().Role != role {
			redirectToLanding(c, "You don't have access to this area")
			return
		}

		c.Set("principal", principal)
		c.Set("userID", principal.Base().ID)
		c.Set("role", principal.Base().Role)
		c.Next()
	}
}

// redirectToLanding aborts the request with a redirect to the landing
// view, carrying the standard error envelope for API clients.
func redirectToLanding(c *gin.Context, message string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, message)
	c.Header("Location", LandingPath)
	c.AbortWithStatusJSON(http.StatusSeeOther, dto.NewErrorResponse(errorDetail))
}

// CurrentPrincipal pulls the principal placed in the context by the gate.
func CurrentPrincipal(c *gin.Context) (models.Principal, bool) {
	value, exists := c.Get("principal")
	if !exists {
		return nil, false
	}
	principal, ok := value.(models.Principal)
	return principal, ok
}
