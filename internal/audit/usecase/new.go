package usecase

import (
	"identity-srv/internal/audit"
	"identity-srv/internal/audit/repository"
	"identity-srv/pkg/kafka"
	"identity-srv/pkg/log"
)

type implUseCase struct {
	repo     repository.PostgresRepository
	producer *kafka.Producer
	l        log.Logger
}

// New - Factory function. producer may be nil, events then stay DB-only.
func New(
	repo repository.PostgresRepository,
	producer *kafka.Producer,
	l log.Logger,
) audit.UseCase {
	return &implUseCase{
		repo:     repo,
		producer: producer,
		l:        l,
	}
}
