package http

import (
	"github.com/gin-gonic/gin"

	"identity-srv/internal/middleware"
	"identity-srv/pkg/permission"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	logs := r.Group("/api/v1/audit-logs")
	logs.Use(mw.Auth(), mw.RequirePermissions(permission.AdminAccess))
	{
		logs.GET("", h.List)
	}
}
