package redis

import (
	"time"

	"identity-srv/internal/user/repository"
	"identity-srv/pkg/log"
	pkgRedis "identity-srv/pkg/redis"
)

const defaultUserTTL = 5 * time.Minute

type implCache struct {
	redis pkgRedis.IRedis
	l     log.Logger
	ttl   time.Duration
}

// New - Factory function. ttl <= 0 falls back to the default.
func New(redis pkgRedis.IRedis, l log.Logger, ttl time.Duration) repository.CacheRepository {
	if ttl <= 0 {
		ttl = defaultUserTTL
	}
	return &implCache{
		redis: redis,
		l:     l,
		ttl:   ttl,
	}
}
