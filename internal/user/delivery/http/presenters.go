package http

import (
	"identity-srv/internal/model"
	"identity-srv/internal/user"
	"identity-srv/pkg/paginator"
	"identity-srv/pkg/response"
)

type createUserReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	IsActive *bool  `json:"is_active,omitempty"`
}

func (r createUserReq) toInput() user.CreateInput {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return user.CreateInput{
		Email:    r.Email,
		Password: r.Password,
		FullName: r.FullName,
		Role:     model.Role(r.Role),
		IsActive: isActive,
	}
}

type updateUserReq struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r updateUserReq) toInput() user.UpdateInput {
	input := user.UpdateInput{
		Email:    r.Email,
		Password: r.Password,
		FullName: r.FullName,
		IsActive: r.IsActive,
	}
	if r.Role != nil {
		role := model.Role(*r.Role)
		input.Role = &role
	}
	return input
}

type listUsersReq struct {
	Email    string
	Role     string
	IsActive *bool
	Page     int
	Limit    int64
}

func (r listUsersReq) toInput() user.ListInput {
	return user.ListInput{
		Email:    r.Email,
		Role:     model.Role(r.Role),
		IsActive: r.IsActive,
		Paginate: paginator.PaginateQuery{
			Page:  r.Page,
			Limit: r.Limit,
		},
	}
}

type userResp struct {
	ID        int64             `json:"id"`
	Email     string            `json:"email"`
	FullName  string            `json:"full_name"`
	Role      string            `json:"role"`
	IsActive  bool              `json:"is_active"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func (h *handler) newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: response.DateTime(u.CreatedAt),
		UpdatedAt: response.DateTime(u.UpdatedAt),
	}
}

type listUsersResp struct {
	Items []userResp                  `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

func (h *handler) newListUsersResp(users []model.User, pag paginator.Paginator) listUsersResp {
	items := make([]userResp, 0, len(users))
	for _, u := range users {
		items = append(items, h.newUserResp(u))
	}
	return listUsersResp{
		Items: items,
		Meta:  pag.ToResponse(),
	}
}
