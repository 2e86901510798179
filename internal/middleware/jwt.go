package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nsmosa/alumni-portal-api/internal/identity"
	"github.com/nsmosa/alumni-portal-api/internal/models"
	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
	"github.com/nsmosa/alumni-portal-api/pkg/response"
)

// ContextUserKey is the gin context key storing the admin principal.
const ContextUserKey = "currentAdmin"

// tokenValidator verifies admin session tokens.
type tokenValidator interface {
	ValidateToken(token string) (*models.AdminClaims, error)
}

// AdminJWT protects CMS routes by requiring a valid admin session token.
// The resolved principal is stored on the request context.
func AdminJWT(auth tokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserKey, identity.AdminFromClaims(claims))
		c.Next()
	}
}

// AdminFromContext returns the authenticated admin principal, if any.
func AdminFromContext(c *gin.Context) (identity.AdminPrincipal, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return identity.AdminPrincipal{}, false
	}
	principal, ok := value.(identity.AdminPrincipal)
	return principal, ok
}
