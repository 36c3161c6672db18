package http

import (
	"github.com/gin-gonic/gin"

	"identity-srv/internal/audit"
	"identity-srv/internal/middleware"
	"identity-srv/pkg/log"
)

// Handler - Audit log HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc audit.UseCase
}

// New - Factory
func New(l log.Logger, uc audit.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
