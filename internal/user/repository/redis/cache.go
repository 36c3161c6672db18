package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"identity-srv/internal/model"
	"identity-srv/internal/user/repository"
	pkgRedis "identity-srv/pkg/redis"
)

func userKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

// GetUser - Read a cached user. Returns ErrCacheMiss on absence.
func (c *implCache) GetUser(ctx context.Context, id int64) (model.User, error) {
	raw, err := c.redis.Get(ctx, userKey(id))
	if err != nil {
		if pkgRedis.IsNilErr(err) {
			return model.User{}, repository.ErrCacheMiss
		}
		return model.User{}, fmt.Errorf("GetUser: %w", err)
	}

	var u model.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		// Corrupt entry, drop it and treat as a miss.
		c.l.Warnf(ctx, "user.repository.redis.GetUser: corrupt cache entry for %d: %v", id, err)
		_ = c.redis.Delete(ctx, userKey(id))
		return model.User{}, repository.ErrCacheMiss
	}

	return u, nil
}

// SetUser - Cache a user with the configured TTL
func (c *implCache) SetUser(ctx context.Context, u model.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("SetUser: %w", err)
	}
	if err := c.redis.Set(ctx, userKey(u.ID), raw, c.ttl); err != nil {
		return fmt.Errorf("SetUser: %w", err)
	}
	return nil
}

// DeleteUser - Invalidate a cached user
func (c *implCache) DeleteUser(ctx context.Context, id int64) error {
	if err := c.redis.Delete(ctx, userKey(id)); err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	return nil
}
