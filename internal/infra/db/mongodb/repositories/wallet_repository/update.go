package wallet_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateWalletRepository struct {
	Db *mongo.Database
}

func NewUpdateWalletRepository(db *mongo.Database) *UpdateWalletRepository {
	return &UpdateWalletRepository{Db: db}
}

func (r *UpdateWalletRepository) Update(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error) {
	collection := r.Db.Collection(models.WalletCollection)

	found, err := helpers.UpdateFields(ctx, collection, wallet.Id, bson.M{
		"name":        wallet.Name,
		"notes":       wallet.Notes,
		"provider_id": wallet.ProviderId,
		"asset_id":    wallet.AssetId,
	})
	if err != nil || !found {
		return nil, err
	}

	return helpers.FindOne[models.Wallet](ctx, collection, bson.M{"_id": wallet.Id})
}
