package redis_repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
)

type ExportCacheRepository struct {
	Client *redis.Client
}

func NewExportCacheRepository(client *redis.Client) *ExportCacheRepository {
	return &ExportCacheRepository{Client: client}
}

func ExportKey(workspaceId string, format string) string {
	return fmt.Sprintf("finance:export:%s:%s", workspaceId, format)
}

func (r *ExportCacheRepository) Save(ctx context.Context, key string, data []byte, expiration time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, helpers.RedisTimeout)
	defer cancel()

	if err := r.Client.Set(ctx, key, data, expiration).Err(); err != nil {
		return fmt.Errorf("save export %s: %w", key, err)
	}

	return nil
}

// Find returns nil without error when nothing is cached under key.
func (r *ExportCacheRepository) Find(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, helpers.RedisTimeout)
	defer cancel()

	value, err := r.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find export %s: %w", key, err)
	}

	return value, nil
}

func (r *ExportCacheRepository) TTL(ctx context.Context, key string) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, helpers.RedisTimeout)
	defer cancel()

	ttl, err := r.Client.TTL(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("ttl of %s: %w", key, err)
	}

	return ttl, nil
}

// Invalidate deletes the exports of every format cached for workspaceId.
func (r *ExportCacheRepository) Invalidate(ctx context.Context, workspaceId primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, helpers.RedisTimeout)
	defer cancel()

	var keys []string
	iter := r.Client.Scan(ctx, 0, ExportKey(workspaceId.Hex(), "*"), 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan exports of %s: %w", workspaceId.Hex(), err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := r.Client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete exports of %s: %w", workspaceId.Hex(), err)
	}
	return nil
}
