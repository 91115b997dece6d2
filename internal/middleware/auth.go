package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zidaf/inayaspace/internal/modules/session/service"
	"github.com/zidaf/inayaspace/pkg/response"
)

// AuthMiddleware gates every content endpoint behind the session
// service. The same resolution used to be repeated inside each
// endpoint; it lives only here now.
type AuthMiddleware struct {
	sessions session.Service
}

func NewAuthMiddleware(sessions session.Service) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Token extracts the opaque bearer token from the Authorization
// header. The header value is the token itself; a "Bearer " prefix is
// tolerated for standard clients.
func Token(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return header
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := Token(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			c.Abort()
			return
		}

		user := m.sessions.ResolveUser(c.Request.Context(), token)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(response.ContextUserKey, user)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := response.GetUser(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		if !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
