package asset_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AssetDependentsRepository struct {
	Db *mongo.Database
}

func NewAssetDependentsRepository(db *mongo.Database) *AssetDependentsRepository {
	return &AssetDependentsRepository{Db: db}
}

func (r *AssetDependentsRepository) HasDependents(ctx context.Context, assetId primitive.ObjectID) (bool, error) {
	return helpers.IsReferenced(ctx, r.Db, assetId,
		helpers.Reference{Collection: models.WalletCollection, Field: "asset_id"},
		helpers.Reference{Collection: models.TransactionCollection, Field: "asset_id"},
		helpers.Reference{Collection: models.BookedAmountCollection, Field: "asset_id"},
		helpers.Reference{Collection: models.RecurringPaymentCollection, Field: "asset_id"},
	)
}
