package wallet_repository

import (
	"context"
	"fmt"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateWalletRepository struct {
	Db *mongo.Database
}

func NewCreateWalletRepository(db *mongo.Database) *CreateWalletRepository {
	return &CreateWalletRepository{Db: db}
}

func (r *CreateWalletRepository) Create(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error) {
	collection := r.Db.Collection(models.WalletCollection)

	now := helpers.Now()
	wallet.Id = primitive.NewObjectID()
	wallet.CreatedAt = now
	wallet.UpdatedAt = now

	doc := bson.M{
		"_id":          wallet.Id,
		"workspace_id": wallet.WorkspaceId,
		"name":         wallet.Name,
		"notes":        wallet.Notes,
		"provider_id":  wallet.ProviderId,
		"asset_id":     wallet.AssetId,
		"created_at":   now,
		"updated_at":   now,
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	if _, err := collection.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert wallet: %w", err)
	}

	return wallet, nil
}
