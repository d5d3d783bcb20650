package helpers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/domain/usecase"
)

// InvalidateExports drops the cached exports of workspaceId after a write to
// its transactions. Errors are only logged.
func InvalidateExports(ctx context.Context, exports usecase.InvalidateExportsRepository, workspaceId primitive.ObjectID) {
	if exports == nil {
		return
	}
	if err := exports.Invalidate(ctx, workspaceId); err != nil {
		log.WithError(err).WithField("workspace", workspaceId.Hex()).Warn("Error invalidating cached exports")
	}
}
