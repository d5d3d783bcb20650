package asset_repository

import (
	"context"
	"fmt"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateAssetRepository struct {
	Db *mongo.Database
}

func NewCreateAssetRepository(db *mongo.Database) *CreateAssetRepository {
	return &CreateAssetRepository{Db: db}
}

func (r *CreateAssetRepository) Create(ctx context.Context, asset *models.Asset) (*models.Asset, error) {
	collection := r.Db.Collection(models.AssetCollection)

	now := helpers.Now()
	asset.Id = primitive.NewObjectID()
	asset.CreatedAt = now
	asset.UpdatedAt = now

	doc := bson.M{
		"_id":          asset.Id,
		"workspace_id": asset.WorkspaceId,
		"name":         asset.Name,
		"code":         asset.Code,
		"symbol":       asset.Symbol,
		"notes":        asset.Notes,
		"provider_id":  asset.ProviderId,
		"created_at":   now,
		"updated_at":   now,
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	if _, err := collection.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert asset: %w", err)
	}

	return asset, nil
}
