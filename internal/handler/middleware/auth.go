package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"agenda-engine/internal/handler/httperr"
	"agenda-engine/internal/pkg/errs"
	"agenda-engine/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const ctxBusinessSlugKey = "business_slug"

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireOwner admits requests carrying a valid owner bearer token and scopes them to its business.
func (m *AuthMiddleware) RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Access token required", nil)
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Owner token validation failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errs.ErrUnauthenticated), "Invalid or expired token", nil)
			return
		}

		c.Set(ctxBusinessSlugKey, claims.BusinessSlug)
		c.Set("jwt_claims", map[string]any{
			"business_slug": claims.BusinessSlug,
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetBusinessSlug(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxBusinessSlugKey)
	if !exists {
		return "", false
	}
	slug, ok := v.(string)
	return slug, ok && slug != ""
}
