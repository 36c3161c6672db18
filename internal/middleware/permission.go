package middleware

import (
	"identity-srv/internal/model"
	"identity-srv/pkg/response"
	"identity-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// RequirePermissions allows the request only when the scope holds every
// permission in perms (AND semantics). Must run after Auth.
func (m Middleware) RequirePermissions(perms ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := scope.GetScopeFromContext(c.Request.Context())
		if !sc.HasAllPermissions(perms...) {
			m.l.Warnf(c.Request.Context(), "middleware.RequirePermissions: user %d role %s denied, requires all of %v",
				sc.UserID, sc.Role, perms)
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAnyPermission allows the request when the scope holds at least one
// permission in perms (OR semantics). Must run after Auth.
func (m Middleware) RequireAnyPermission(perms ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := scope.GetScopeFromContext(c.Request.Context())
		if !sc.HasAnyPermission(perms...) {
			m.l.Warnf(c.Request.Context(), "middleware.RequireAnyPermission: user %d role %s denied, requires any of %v",
				sc.UserID, sc.Role, perms)
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole allows the request only when the scope's role is in the allowed
// set. Must run after Auth.
func (m Middleware) RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := scope.GetScopeFromContext(c.Request.Context())
		if !sc.HasRole(roles...) {
			m.l.Warnf(c.Request.Context(), "middleware.RequireRole: user %d role %s denied, requires one of %v",
				sc.UserID, sc.Role, roles)
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
