package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExportCacheRepository keeps rendered export files for a short while.
type ExportCacheRepository interface {
	Find(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte, expiration time.Duration) error
}

// InvalidateExportsRepository drops every cached export of a workspace.
type InvalidateExportsRepository interface {
	Invalidate(ctx context.Context, workspaceId primitive.ObjectID) error
}

type LockRepository interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
