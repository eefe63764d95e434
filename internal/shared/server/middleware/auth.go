package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/identity"
	"resume-tailor/internal/shared/server/respond"
	"resume-tailor/internal/shared/telemetry"
)

const (
	userIDKey    = "userId"
	userEmailKey = "userEmail"
)

// BearerToken extracts the token from the Authorization header, if any.
func BearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// Identity resolves a bearer token when one is present and stores the caller
// identity in context. Resolution failure never aborts the request: routes
// using this mode treat identity as best-effort.
func Identity(resolver identity.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" || resolver == nil {
			c.Next()
			return
		}

		user, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			telemetry.Warn("identity.resolve_failed", map[string]any{
				"request_id": RequestIDFromContext(c),
				"path":       c.Request.URL.Path,
				"err":        err.Error(),
			})
			c.Next()
			return
		}

		c.Set(userIDKey, user.ID)
		c.Set(userEmailKey, user.Email)
		c.Next()
	}
}

// RequireIdentity resolves the bearer token and rejects the request when the
// token is absent or the provider does not accept it.
func RequireIdentity(resolver identity.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			respond.Error(c, http.StatusUnauthorized, "No auth token")
			return
		}

		if resolver == nil {
			respond.Error(c, http.StatusUnauthorized, "Invalid auth")
			return
		}

		user, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "Invalid auth")
			return
		}

		c.Set(userIDKey, user.ID)
		c.Set(userEmailKey, user.Email)
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the identity middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
