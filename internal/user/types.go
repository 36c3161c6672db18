package user

import (
	"identity-srv/internal/model"
	"identity-srv/pkg/paginator"
)

type CreateInput struct {
	Email    string
	FullName string
	Password string
	Role     model.Role
	IsActive bool
}

type UpdateInput struct {
	Email    *string
	FullName *string
	Password *string
	Role     *model.Role
	IsActive *bool
}

type ListInput struct {
	Email    string // substring match
	Role     model.Role
	IsActive *bool
	Paginate paginator.PaginateQuery
}
