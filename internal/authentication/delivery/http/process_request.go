package http

import (
	"github.com/gin-gonic/gin"

	"identity-srv/internal/authentication"
	"identity-srv/internal/model"
	"identity-srv/pkg/scope"
)

func requestMeta(c *gin.Context) authentication.RequestMeta {
	return authentication.RequestMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

func (h *handler) processLoginRequest(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processRegisterRequest(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processRefreshRequest(c *gin.Context) (refreshReq, error) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processScope(c *gin.Context) model.Scope {
	return scope.GetScopeFromContext(c.Request.Context())
}
