package usecase

import (
	"identity-srv/internal/user"
	"identity-srv/internal/user/repository"
	"identity-srv/pkg/log"
)

type implUseCase struct {
	repo  repository.PostgresRepository
	cache repository.CacheRepository
	l     log.Logger
}

// New - Factory function. cache may be nil, lookups then always hit postgres.
func New(
	repo repository.PostgresRepository,
	cache repository.CacheRepository,
	l log.Logger,
) user.UseCase {
	return &implUseCase{
		repo:  repo,
		cache: cache,
		l:     l,
	}
}
