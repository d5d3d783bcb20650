package asset_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindAssetByIdRepository struct {
	Db *mongo.Database
}

func NewFindAssetByIdRepository(db *mongo.Database) *FindAssetByIdRepository {
	return &FindAssetByIdRepository{Db: db}
}

func (r *FindAssetByIdRepository) Find(ctx context.Context, assetId primitive.ObjectID) (*models.Asset, error) {
	return helpers.FindOne[models.Asset](ctx, r.Db.Collection(models.AssetCollection), bson.M{"_id": assetId})
}
