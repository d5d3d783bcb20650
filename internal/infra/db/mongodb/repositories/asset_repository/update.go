package asset_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateAssetRepository struct {
	Db *mongo.Database
}

func NewUpdateAssetRepository(db *mongo.Database) *UpdateAssetRepository {
	return &UpdateAssetRepository{Db: db}
}

// Update returns nil when the asset does not exist.
func (r *UpdateAssetRepository) Update(ctx context.Context, asset *models.Asset) (*models.Asset, error) {
	collection := r.Db.Collection(models.AssetCollection)

	found, err := helpers.UpdateFields(ctx, collection, asset.Id, bson.M{
		"name":        asset.Name,
		"code":        asset.Code,
		"symbol":      asset.Symbol,
		"notes":       asset.Notes,
		"provider_id": asset.ProviderId,
	})
	if err != nil || !found {
		return nil, err
	}

	return helpers.FindOne[models.Asset](ctx, collection, bson.M{"_id": asset.Id})
}
