package http

import (
	"github.com/gin-gonic/gin"

	"identity-srv/internal/middleware"
	"identity-srv/pkg/permission"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	users := r.Group("/api/v1/users")
	users.Use(mw.Auth())
	{
		users.GET("", mw.RequirePermissions(permission.UsersRead), h.List)
		users.POST("", mw.RequirePermissions(permission.UsersWrite), h.Create)
		users.GET("/:id", mw.RequireAnyPermission(permission.UsersRead, permission.UsersReadOwn), h.Detail)
		users.PATCH("/:id", mw.RequireAnyPermission(permission.UsersWrite, permission.ProfileWriteOwn), h.Update)
		users.DELETE("/:id", mw.RequirePermissions(permission.UsersDelete), h.Delete)
	}
}
