package usecase

import (
	"identity-srv/internal/audit"
	"identity-srv/internal/authentication"
	"identity-srv/internal/user"
	pkgJWT "identity-srv/pkg/jwt"
	"identity-srv/pkg/log"
)

type implUseCase struct {
	userUC  user.UseCase
	auditUC audit.UseCase
	jwt     pkgJWT.IManager
	l       log.Logger
}

// New - Factory function
func New(
	userUC user.UseCase,
	auditUC audit.UseCase,
	jwt pkgJWT.IManager,
	l log.Logger,
) authentication.UseCase {
	return &implUseCase{
		userUC:  userUC,
		auditUC: auditUC,
		jwt:     jwt,
		l:       l,
	}
}
