package authentication

import (
	"context"

	"identity-srv/internal/model"
	pkgJWT "identity-srv/pkg/jwt"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Login(ctx context.Context, input LoginInput) (TokenOutput, error)
	Register(ctx context.Context, input RegisterInput) (model.User, error)
	Refresh(ctx context.Context, input RefreshInput) (TokenOutput, error)
	Me(ctx context.Context, sc model.Scope) (model.User, error)
	Logout(ctx context.Context, sc model.Scope, meta RequestMeta)
	PublicKeyPEM() string
	JWKS() pkgJWT.JWKS
}
