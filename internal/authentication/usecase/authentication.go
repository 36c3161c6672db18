package usecase

import (
	"context"
	"errors"
	"fmt"

	"identity-srv/internal/audit"
	"identity-srv/internal/authentication"
	"identity-srv/internal/model"
	"identity-srv/internal/user"
	pkgJWT "identity-srv/pkg/jwt"
)

// Login - Verify credentials and issue an access/refresh pair
func (uc *implUseCase) Login(ctx context.Context, input authentication.LoginInput) (authentication.TokenOutput, error) {
	u, err := uc.userUC.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		uc.recordFailure(ctx, input.Email, model.AuditActionLoginFailed, input.Meta, err)
		switch {
		case errors.Is(err, user.ErrInvalidCredentials):
			return authentication.TokenOutput{}, authentication.ErrInvalidCredentials
		case errors.Is(err, user.ErrInactiveUser):
			return authentication.TokenOutput{}, authentication.ErrInactiveUser
		}
		return authentication.TokenOutput{}, err
	}

	out, err := uc.issuePair(ctx, u)
	if err != nil {
		return authentication.TokenOutput{}, err
	}

	uc.auditUC.Record(ctx, audit.RecordInput{
		UserID:    &u.ID,
		Email:     u.Email,
		Action:    model.AuditActionLogin,
		IPAddress: input.Meta.IPAddress,
		UserAgent: input.Meta.UserAgent,
		Success:   true,
	})

	return out, nil
}

// Register - Self-service signup. New accounts are always plain active users;
// role escalation only happens through the admin user API.
func (uc *implUseCase) Register(ctx context.Context, input authentication.RegisterInput) (model.User, error) {
	u, err := uc.userUC.Create(ctx, model.Scope{}, user.CreateInput{
		Email:    input.Email,
		Password: input.Password,
		FullName: input.FullName,
		Role:     model.RoleUser,
		IsActive: true,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailTaken):
			return model.User{}, authentication.ErrEmailTaken
		case errors.Is(err, user.ErrInvalidEmail):
			return model.User{}, authentication.ErrInvalidEmail
		case errors.Is(err, user.ErrWeakPassword):
			return model.User{}, authentication.ErrWeakPassword
		}
		return model.User{}, err
	}

	uc.auditUC.Record(ctx, audit.RecordInput{
		UserID:    &u.ID,
		Email:     u.Email,
		Action:    model.AuditActionRegister,
		IPAddress: input.Meta.IPAddress,
		UserAgent: input.Meta.UserAgent,
		Success:   true,
	})

	return u, nil
}

// Refresh - Exchange a valid refresh token for a fresh pair. The subject is
// reloaded so revoked roles or deactivation take effect immediately.
func (uc *implUseCase) Refresh(ctx context.Context, input authentication.RefreshInput) (authentication.TokenOutput, error) {
	claims, err := uc.jwt.Verify(input.RefreshToken, pkgJWT.TokenTypeRefresh)
	if err != nil {
		uc.l.Warnf(ctx, "authentication.usecase.Refresh: token rejected: %v", err)
		return authentication.TokenOutput{}, authentication.ErrInvalidRefreshToken
	}

	id, err := claims.SubjectID()
	if err != nil {
		uc.l.Warnf(ctx, "authentication.usecase.Refresh: bad subject %q: %v", claims.Subject, err)
		return authentication.TokenOutput{}, authentication.ErrInvalidRefreshToken
	}

	u, err := uc.userUC.Detail(ctx, model.Scope{UserID: id}, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return authentication.TokenOutput{}, authentication.ErrUserNotFound
		}
		return authentication.TokenOutput{}, err
	}

	if !u.IsActive {
		return authentication.TokenOutput{}, authentication.ErrInactiveUser
	}

	out, err := uc.issuePair(ctx, u)
	if err != nil {
		return authentication.TokenOutput{}, err
	}

	uc.auditUC.Record(ctx, audit.RecordInput{
		UserID:    &u.ID,
		Email:     u.Email,
		Action:    model.AuditActionTokenRefresh,
		IPAddress: input.Meta.IPAddress,
		UserAgent: input.Meta.UserAgent,
		Success:   true,
	})

	return out, nil
}

// Me - Return the account behind the verified access token
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	u, err := uc.userUC.Detail(ctx, sc, sc.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return model.User{}, authentication.ErrUserNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

// Logout - Audit-only: tokens stay valid until expiry, clients drop them.
func (uc *implUseCase) Logout(ctx context.Context, sc model.Scope, meta authentication.RequestMeta) {
	uc.auditUC.Record(ctx, audit.RecordInput{
		UserID:    &sc.UserID,
		Email:     sc.Email,
		Action:    model.AuditActionLogout,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		Success:   true,
	})
}

// PublicKeyPEM - Expose the verification key for downstream services
func (uc *implUseCase) PublicKeyPEM() string {
	return uc.jwt.PublicKeyPEM()
}

// JWKS - Expose the verification key in JWKS form
func (uc *implUseCase) JWKS() pkgJWT.JWKS {
	return uc.jwt.JWKS()
}

func (uc *implUseCase) issuePair(ctx context.Context, u model.User) (authentication.TokenOutput, error) {
	access, err := uc.jwt.GenerateAccessToken(u)
	if err != nil {
		uc.l.Errorf(ctx, "authentication.usecase.issuePair: access token: %v", err)
		return authentication.TokenOutput{}, fmt.Errorf("generate access token: %w", err)
	}

	refresh, err := uc.jwt.GenerateRefreshToken(u)
	if err != nil {
		uc.l.Errorf(ctx, "authentication.usecase.issuePair: refresh token: %v", err)
		return authentication.TokenOutput{}, fmt.Errorf("generate refresh token: %w", err)
	}

	return authentication.TokenOutput{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    int64(uc.jwt.AccessTTL().Seconds()),
	}, nil
}

func (uc *implUseCase) recordFailure(ctx context.Context, email, action string, meta authentication.RequestMeta, cause error) {
	uc.auditUC.Record(ctx, audit.RecordInput{
		Email:     email,
		Action:    action,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		Success:   false,
		Detail:    cause.Error(),
	})
}
