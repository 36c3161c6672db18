package middleware

import (
	pkgJWT "identity-srv/pkg/jwt"
	"identity-srv/pkg/response"
	"identity-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Auth verifies the Bearer access token and stores the resulting scope in the
// request context. Every verification failure produces the same 401 body; the
// failure kind (expired, signature, claims, type) is only logged.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		// Support both "Bearer <token>" and plain token
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				tokenString = authHeader[7:]
			} else {
				tokenString = authHeader
			}
		}

		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := m.jwtManager.Verify(tokenString, pkgJWT.TokenTypeAccess)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: token rejected: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Set scope in context for downstream handlers
		ctx := c.Request.Context()
		sc := scope.NewScope(claims)
		ctx = scope.SetScopeToContext(ctx, sc)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
