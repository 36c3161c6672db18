package user

import (
	"context"

	"identity-srv/internal/model"
	"identity-srv/pkg/paginator"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.User, error)
	Authenticate(ctx context.Context, email, password string) (model.User, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (model.User, error)
	List(ctx context.Context, sc model.Scope, input ListInput) ([]model.User, paginator.Paginator, error)
	Update(ctx context.Context, sc model.Scope, id int64, input UpdateInput) (model.User, error)
	Delete(ctx context.Context, sc model.Scope, id int64) error
}
