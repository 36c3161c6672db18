package http

import (
	"github.com/gin-gonic/gin"

	"identity-srv/internal/authentication"
	"identity-srv/internal/middleware"
	"identity-srv/pkg/log"
)

// Handler - Authentication HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc authentication.UseCase
}

// New - Factory
func New(l log.Logger, uc authentication.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
