package http

import (
	"github.com/gin-gonic/gin"

	"identity-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/refresh", h.Refresh)
		auth.GET("/public-key", h.PublicKey)
		auth.GET("/jwks", h.JWKS)

		authed := auth.Group("")
		authed.Use(mw.Auth())
		{
			authed.GET("/me", h.Me)
			authed.POST("/logout", h.Logout)
		}
	}
}
