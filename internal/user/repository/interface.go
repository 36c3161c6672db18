package repository

import (
	"context"

	"identity-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	Create(ctx context.Context, opt CreateOptions) (model.User, error)
	GetByID(ctx context.Context, id int64) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	List(ctx context.Context, opt ListOptions) ([]model.User, int64, error)
	Update(ctx context.Context, opt UpdateOptions) (model.User, error)
	Delete(ctx context.Context, id int64) error
}

// CacheRepository - User-by-ID cache on top of the primary store
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetUser(ctx context.Context, id int64) (model.User, error)
	SetUser(ctx context.Context, u model.User) error
	DeleteUser(ctx context.Context, id int64) error
}
