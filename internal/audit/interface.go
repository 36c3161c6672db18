package audit

import (
	"context"

	"identity-srv/internal/model"
	"identity-srv/pkg/paginator"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Record persists an audit event and mirrors it onto the event stream.
	// It never fails the calling flow: errors are logged and swallowed.
	Record(ctx context.Context, input RecordInput)

	List(ctx context.Context, sc model.Scope, input ListInput) ([]model.AuditLog, paginator.Paginator, error)
}
