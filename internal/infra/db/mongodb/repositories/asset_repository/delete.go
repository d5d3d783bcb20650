package asset_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteAssetRepository struct {
	Db *mongo.Database
}

func NewDeleteAssetRepository(db *mongo.Database) *DeleteAssetRepository {
	return &DeleteAssetRepository{Db: db}
}

func (r *DeleteAssetRepository) Delete(ctx context.Context, assetId primitive.ObjectID) error {
	return helpers.DeleteById(ctx, r.Db.Collection(models.AssetCollection), assetId)
}
