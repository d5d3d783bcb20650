package usecase

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateAssetRepository interface {
	Create(ctx context.Context, asset *models.Asset) (*models.Asset, error)
}

type FindAssetsByWorkspaceIdRepository interface {
	Find(ctx context.Context, workspaceId primitive.ObjectID, pagination *models.Pagination) (*models.PagedResponse[models.Asset], error)
}

type FindAssetByIdRepository interface {
	Find(ctx context.Context, assetId primitive.ObjectID) (*models.Asset, error)
}

type UpdateAssetRepository interface {
	Update(ctx context.Context, asset *models.Asset) (*models.Asset, error)
}

type DeleteAssetRepository interface {
	Delete(ctx context.Context, assetId primitive.ObjectID) error
}
