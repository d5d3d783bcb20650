package redis_repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
)

type LockRepository struct {
	Client *redis.Client
}

func NewLockRepository(client *redis.Client) *LockRepository {
	return &LockRepository{Client: client}
}

func JobLockKey(job string, workspaceId string) string {
	return fmt.Sprintf("finance:job:%s:%s", job, workspaceId)
}

// Acquire reports false when someone else holds the lock.
func (r *LockRepository) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, helpers.RedisTimeout)
	defer cancel()

	ok, err := r.Client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire lock %s: %w", key, err)
	}

	return ok, nil
}

func (r *LockRepository) Release(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, helpers.RedisTimeout)
	defer cancel()

	if err := r.Client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("release lock %s: %w", key, err)
	}

	return nil
}
