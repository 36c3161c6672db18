package http

import (
	"identity-srv/internal/authentication"
	"identity-srv/internal/model"
	"identity-srv/pkg/response"
)

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput(meta authentication.RequestMeta) authentication.LoginInput {
	return authentication.LoginInput{
		Email:    r.Email,
		Password: r.Password,
		Meta:     meta,
	}
}

type registerReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
}

func (r registerReq) toInput(meta authentication.RequestMeta) authentication.RegisterInput {
	return authentication.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
		FullName: r.FullName,
		Meta:     meta,
	}
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (r refreshReq) toInput(meta authentication.RequestMeta) authentication.RefreshInput {
	return authentication.RefreshInput{
		RefreshToken: r.RefreshToken,
		Meta:         meta,
	}
}

type tokenResp struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (h *handler) newTokenResp(o authentication.TokenOutput) tokenResp {
	return tokenResp{
		AccessToken:  o.AccessToken,
		RefreshToken: o.RefreshToken,
		TokenType:    o.TokenType,
		ExpiresIn:    o.ExpiresIn,
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
