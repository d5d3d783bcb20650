package wallet_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type WalletDependentsRepository struct {
	Db *mongo.Database
}

func NewWalletDependentsRepository(db *mongo.Database) *WalletDependentsRepository {
	return &WalletDependentsRepository{Db: db}
}

func (r *WalletDependentsRepository) HasDependents(ctx context.Context, walletId primitive.ObjectID) (bool, error) {
	return helpers.IsReferenced(ctx, r.Db, walletId,
		helpers.Reference{Collection: models.TransactionCollection, Field: "wallet_id"},
		helpers.Reference{Collection: models.BookedAmountCollection, Field: "wallet_id"},
		helpers.Reference{Collection: models.RecurringPaymentCollection, Field: "wallet_id"},
	)
}
