package wallet_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteWalletRepository struct {
	Db *mongo.Database
}

func NewDeleteWalletRepository(db *mongo.Database) *DeleteWalletRepository {
	return &DeleteWalletRepository{Db: db}
}

func (r *DeleteWalletRepository) Delete(ctx context.Context, walletId primitive.ObjectID) error {
	return helpers.DeleteById(ctx, r.Db.Collection(models.WalletCollection), walletId)
}
