package transaction_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TransactionDependentsRepository struct {
	Db *mongo.Database
}

func NewTransactionDependentsRepository(db *mongo.Database) *TransactionDependentsRepository {
	return &TransactionDependentsRepository{Db: db}
}

func (r *TransactionDependentsRepository) HasDependents(ctx context.Context, transactionId primitive.ObjectID) (bool, error) {
	return helpers.IsReferenced(ctx, r.Db, transactionId,
		helpers.Reference{Collection: models.BookedAmountCollection, Field: "transaction_id"},
		helpers.Reference{Collection: models.TransactionCollection, Field: "internal_ref_id"},
	)
}
