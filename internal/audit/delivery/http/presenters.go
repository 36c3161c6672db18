package http

import (
	"identity-srv/internal/audit"
	"identity-srv/internal/model"
	"identity-srv/pkg/paginator"
	"identity-srv/pkg/response"
)

type listAuditLogsReq struct {
	UserID *int64
	Email  string
	Action string
	From   *int64
	To     *int64
	Page   int
	Limit  int64
}

func (r listAuditLogsReq) toInput() audit.ListInput {
	input := audit.ListInput{
		UserID: r.UserID,
		Email:  r.Email,
		Action: r.Action,
		Paginate: paginator.PaginateQuery{
			Page:  r.Page,
			Limit: r.Limit,
		},
	}
	if r.From != nil {
		from := unixTime(*r.From)
		input.From = &from
	}
	if r.To != nil {
		to := unixTime(*r.To)
		input.To = &to
	}
	return input
}

type auditLogResp struct {
	ID        int64             `json:"id"`
	UserID    *int64            `json:"user_id,omitempty"`
	Email     string            `json:"email,omitempty"`
	Action    string            `json:"action"`
	IPAddress string            `json:"ip_address,omitempty"`
	UserAgent string            `json:"user_agent,omitempty"`
	Success   bool              `json:"success"`
	Detail    string            `json:"detail,omitempty"`
	CreatedAt response.DateTime `json:"created_at"`
}

func (h *handler) newAuditLogResp(entry model.AuditLog) auditLogResp {
	return auditLogResp{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Email:     entry.Email,
		Action:    entry.Action,
		IPAddress: entry.IPAddress,
		UserAgent: entry.UserAgent,
		Success:   entry.Success,
		Detail:    entry.Detail,
		CreatedAt: response.DateTime(entry.CreatedAt),
	}
}

type listAuditLogsResp struct {
	Items []auditLogResp              `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

func (h *handler) newListAuditLogsResp(entries []model.AuditLog, pag paginator.Paginator) listAuditLogsResp {
	items := make([]auditLogResp, 0, len(entries))
	for _, entry := range entries {
		items = append(items, h.newAuditLogResp(entry))
	}
	return listAuditLogsResp{
		Items: items,
		Meta:  pag.ToResponse(),
	}
}
