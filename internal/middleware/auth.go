package middleware

import (
	"net/http"
	"strings"

	"campusspaces/internal/domain"
	jwtsvc "campusspaces/internal/pkg/jwt"
	"campusspaces/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth validates the Bearer token and stores the authenticated identity in
// the gin context. Handlers rebuild a domain.Identity from it and pass it
// explicitly into the core; nothing below the handler layer reads the context.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// IdentityFromContext rebuilds the authenticated identity set by Auth.
func IdentityFromContext(c *gin.Context) domain.Identity {
	return domain.Identity{
		UserID: c.GetInt64("user_id"),
		Email:  c.GetString("email"),
		Role:   domain.UserRole(c.GetString("role")),
	}
}
