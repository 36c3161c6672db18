package repository

import "identity-srv/internal/model"

type CreateOptions struct {
	Email          string
	FullName       string
	HashedPassword string
	Role           model.Role
	IsActive       bool
}

type ListOptions struct {
	Email    string // substring match, case-insensitive
	Role     model.Role
	IsActive *bool
	Limit    int
	Offset   int
}

type UpdateOptions struct {
	ID             int64
	Email          *string
	FullName       *string
	HashedPassword *string
	Role           *model.Role
	IsActive       *bool
}
