package scope

import (
	"context"

	"identity-srv/internal/model"
	pkgJWT "identity-srv/pkg/jwt"
)

type contextKey string

const scopeKey contextKey = "scope"

// NewScope projects verified access token claims into a request scope.
func NewScope(claims *pkgJWT.Claims) model.Scope {
	userID, err := claims.SubjectID()
	if err != nil {
		userID = 0
	}

	return model.Scope{
		UserID:      userID,
		Email:       claims.Email,
		Role:        model.Role(claims.Role),
		Permissions: claims.Permissions,
	}
}

// SetScopeToContext stores the scope in the context for downstream handlers.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey, sc)
}

// GetScopeFromContext returns the scope stored in the context, or the zero
// scope when the request was not authenticated.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(scopeKey).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
