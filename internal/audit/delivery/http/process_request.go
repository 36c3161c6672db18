package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"identity-srv/internal/model"
	"identity-srv/pkg/scope"
)

func unixTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

func (h *handler) processListRequest(c *gin.Context) (listAuditLogsReq, model.Scope, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "15"), 10, 64)

	req := listAuditLogsReq{
		Email:  c.Query("email"),
		Action: c.Query("action"),
		Page:   page,
		Limit:  limit,
	}

	if raw, ok := c.GetQuery("user_id"); ok {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return req, model.Scope{}, errInvalidFilter
		}
		req.UserID = &userID
	}
	if raw, ok := c.GetQuery("from"); ok {
		from, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return req, model.Scope{}, errInvalidFilter
		}
		req.From = &from
	}
	if raw, ok := c.GetQuery("to"); ok {
		to, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return req, model.Scope{}, errInvalidFilter
		}
		req.To = &to
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
