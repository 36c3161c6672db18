package http

import (
	"github.com/gin-gonic/gin"

	"identity-srv/pkg/response"
)

// @Summary Create user
// @Description Create a new user account (admin only)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body createUserReq true "Create user request"
// @Success 201 {object} userResp
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/users [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "user.delivery.http.Create: processCreateRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	u, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newUserResp(u))
}

// @Summary Get user detail
// @Description Return one user. Non-admin callers may only fetch themselves.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} userResp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/users/{id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processDetailRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "user.delivery.http.Detail: processDetailRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	u, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUserResp(u))
}

// @Summary List users
// @Description Paginate users with optional email/role/is_active filters
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param email query string false "Email substring filter"
// @Param role query string false "Role filter (ADMIN or USER)"
// @Param is_active query bool false "Active flag filter"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 15, max 100)"
// @Success 200 {object} listUsersResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/users [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "user.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	users, pag, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListUsersResp(users, pag))
}

// @Summary Update user
// @Description Patch user fields. Self-service callers may only change their own profile.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param body body updateUserReq true "Update user request"
// @Success 200 {object} userResp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/users/{id} [patch]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, req, sc, err := h.processUpdateRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "user.delivery.http.Update: processUpdateRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	u, err := h.uc.Update(ctx, sc, id, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Update: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUserResp(u))
}

// @Summary Delete user
// @Description Remove a user account (admin only, never your own)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/users/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processDetailRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "user.delivery.http.Delete: processDetailRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
