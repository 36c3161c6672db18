package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"identity-srv/internal/model"
	"identity-srv/pkg/scope"
)

func (h *handler) processCreateRequest(c *gin.Context) (createUserReq, model.Scope, error) {
	var req createUserReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, errWrongBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processDetailRequest(c *gin.Context) (int64, model.Scope, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, model.Scope{}, errInvalidID
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return id, sc, nil
}

func (h *handler) processListRequest(c *gin.Context) (listUsersReq, model.Scope, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "15"), 10, 64)

	req := listUsersReq{
		Email: c.Query("email"),
		Role:  c.Query("role"),
		Page:  page,
		Limit: limit,
	}

	if raw, ok := c.GetQuery("is_active"); ok {
		isActive, err := strconv.ParseBool(raw)
		if err != nil {
			return req, model.Scope{}, errInvalidIsActive
		}
		req.IsActive = &isActive
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processUpdateRequest(c *gin.Context) (int64, updateUserReq, model.Scope, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, updateUserReq{}, model.Scope{}, errInvalidID
	}

	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return 0, req, model.Scope{}, errWrongBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return id, req, sc, nil
}
