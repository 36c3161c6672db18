package http

import (
	"github.com/gin-gonic/gin"

	"identity-srv/pkg/response"
)

// @Summary List audit logs
// @Description Paginate security audit events with optional filters (admin only)
// @Tags Audit
// @Produce json
// @Security BearerAuth
// @Param user_id query int false "Actor user ID filter"
// @Param email query string false "Actor email filter"
// @Param action query string false "Action filter, e.g. login, logout"
// @Param from query int false "Unix seconds, inclusive lower bound"
// @Param to query int false "Unix seconds, inclusive upper bound"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 15, max 100)"
// @Success 200 {object} listAuditLogsResp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /api/v1/audit-logs [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "audit.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	entries, pag, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "audit.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListAuditLogsResp(entries, pag))
}
