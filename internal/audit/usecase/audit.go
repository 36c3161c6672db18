package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"identity-srv/internal/audit"
	"identity-srv/internal/audit/repository"
	"identity-srv/internal/model"
	"identity-srv/pkg/paginator"
)

// auditEvent is the shape published to the event stream.
type auditEvent struct {
	ID        int64  `json:"id"`
	UserID    *int64 `json:"user_id,omitempty"`
	Email     string `json:"email,omitempty"`
	Action    string `json:"action"`
	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	Success   bool   `json:"success"`
	Detail    string `json:"detail,omitempty"`
	CreatedAt string `json:"created_at"`
}

// Record - Persist an audit event and mirror it to Kafka. Best-effort on both
// legs: an identity operation never fails because auditing did.
func (uc *implUseCase) Record(ctx context.Context, input audit.RecordInput) {
	entry, err := uc.repo.Create(ctx, repository.CreateOptions{
		UserID:    input.UserID,
		Email:     input.Email,
		Action:    input.Action,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
		Success:   input.Success,
		Detail:    input.Detail,
	})
	if err != nil {
		uc.l.Errorf(ctx, "audit.usecase.Record: insert %s: %v", input.Action, err)
		return
	}

	uc.publish(ctx, entry)
}

func (uc *implUseCase) publish(ctx context.Context, entry model.AuditLog) {
	if uc.producer == nil {
		return
	}

	raw, err := json.Marshal(auditEvent{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Email:     entry.Email,
		Action:    entry.Action,
		IPAddress: entry.IPAddress,
		UserAgent: entry.UserAgent,
		Success:   entry.Success,
		Detail:    entry.Detail,
		CreatedAt: entry.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		uc.l.Errorf(ctx, "audit.usecase.publish: marshal: %v", err)
		return
	}

	// Key by action so consumers keep per-action ordering.
	if err := uc.producer.Publish([]byte(entry.Action), raw); err != nil {
		uc.l.Errorf(ctx, "audit.usecase.publish: %v", err)
	}
}

// List - List audit events with filters and pagination
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input audit.ListInput) ([]model.AuditLog, paginator.Paginator, error) {
	if input.From != nil && input.To != nil && input.From.After(*input.To) {
		return nil, paginator.Paginator{}, audit.ErrInvalidTimeRange
	}

	input.Paginate.Adjust()

	entries, total, err := uc.repo.List(ctx, repository.ListOptions{
		UserID: input.UserID,
		Email:  input.Email,
		Action: input.Action,
		From:   input.From,
		To:     input.To,
		Limit:  int(input.Paginate.Limit),
		Offset: int(input.Paginate.Offset()),
	})
	if err != nil {
		uc.l.Errorf(ctx, "audit.usecase.List: %v", err)
		return nil, paginator.Paginator{}, fmt.Errorf("list audit logs: %w", err)
	}

	return entries, paginator.Paginator{
		Total:       total,
		Count:       int64(len(entries)),
		PerPage:     input.Paginate.Limit,
		CurrentPage: input.Paginate.Page,
	}, nil
}
