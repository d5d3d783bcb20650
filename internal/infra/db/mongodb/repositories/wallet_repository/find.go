package wallet_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindWalletsByWorkspaceIdRepository struct {
	Db *mongo.Database
}

func NewFindWalletsByWorkspaceIdRepository(db *mongo.Database) *FindWalletsByWorkspaceIdRepository {
	return &FindWalletsByWorkspaceIdRepository{Db: db}
}

func (r *FindWalletsByWorkspaceIdRepository) Find(ctx context.Context, workspaceId primitive.ObjectID, pagination *models.Pagination) (*models.PagedResponse[models.Wallet], error) {
	stages := helpers.LookupOne(models.PartnerCollection, "provider_id", "provider")
	stages = append(stages, helpers.LookupOne(models.AssetCollection, "asset_id", "asset")...)

	return helpers.FindPage[models.Wallet](
		ctx,
		r.Db.Collection(models.WalletCollection),
		bson.M{"workspace_id": workspaceId},
		pagination,
		models.WalletSortFields,
		stages...,
	)
}
