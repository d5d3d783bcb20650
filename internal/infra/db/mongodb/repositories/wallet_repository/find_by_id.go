package wallet_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindWalletByIdRepository struct {
	Db *mongo.Database
}

func NewFindWalletByIdRepository(db *mongo.Database) *FindWalletByIdRepository {
	return &FindWalletByIdRepository{Db: db}
}

func (r *FindWalletByIdRepository) Find(ctx context.Context, walletId primitive.ObjectID) (*models.Wallet, error) {
	return helpers.FindOne[models.Wallet](ctx, r.Db.Collection(models.WalletCollection), bson.M{"_id": walletId})
}
