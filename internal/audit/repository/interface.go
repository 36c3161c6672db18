package repository

import (
	"context"

	"identity-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	Create(ctx context.Context, opt CreateOptions) (model.AuditLog, error)
	List(ctx context.Context, opt ListOptions) ([]model.AuditLog, int64, error)
}
