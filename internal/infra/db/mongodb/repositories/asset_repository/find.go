package asset_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindAssetsByWorkspaceIdRepository struct {
	Db *mongo.Database
}

func NewFindAssetsByWorkspaceIdRepository(db *mongo.Database) *FindAssetsByWorkspaceIdRepository {
	return &FindAssetsByWorkspaceIdRepository{Db: db}
}

func (r *FindAssetsByWorkspaceIdRepository) Find(ctx context.Context, workspaceId primitive.ObjectID, pagination *models.Pagination) (*models.PagedResponse[models.Asset], error) {
	return helpers.FindPage[models.Asset](
		ctx,
		r.Db.Collection(models.AssetCollection),
		bson.M{"workspace_id": workspaceId},
		pagination,
		models.AssetSortFields,
		helpers.LookupOne(models.PartnerCollection, "provider_id", "provider")...,
	)
}
