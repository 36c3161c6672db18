package http

import (
	"github.com/gin-gonic/gin"

	"identity-srv/internal/middleware"
	"identity-srv/internal/user"
	"identity-srv/pkg/log"
)

// Handler - User management HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc user.UseCase
}

// New - Factory
func New(l log.Logger, uc user.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
