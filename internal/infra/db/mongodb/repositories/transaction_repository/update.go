package transaction_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateTransactionRepository struct {
	Db *mongo.Database
}

func NewUpdateTransactionRepository(db *mongo.Database) *UpdateTransactionRepository {
	return &UpdateTransactionRepository{Db: db}
}

func (r *UpdateTransactionRepository) Update(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	collection := r.Db.Collection(models.TransactionCollection)

	found, err := helpers.UpdateFields(ctx, collection, transaction.Id, editableFields(transaction))
	if err != nil || !found {
		return nil, err
	}

	return helpers.FindOne[models.Transaction](ctx, collection, bson.M{"_id": transaction.Id})
}
