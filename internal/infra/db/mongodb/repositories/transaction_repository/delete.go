package transaction_repository

import (
	"context"
	"fmt"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteTransactionRepository struct {
	Db *mongo.Database
}

func NewDeleteTransactionRepository(db *mongo.Database) *DeleteTransactionRepository {
	return &DeleteTransactionRepository{Db: db}
}

func (r *DeleteTransactionRepository) Delete(ctx context.Context, transactionId primitive.ObjectID) error {
	return helpers.DeleteById(ctx, r.Db.Collection(models.TransactionCollection), transactionId)
}

func (r *DeleteTransactionRepository) DeleteMany(ctx context.Context, transactionIds []primitive.ObjectID) error {
	if len(transactionIds) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	_, err := r.Db.Collection(models.TransactionCollection).DeleteMany(ctx, bson.M{"_id": bson.M{"$in": transactionIds}})
	if err != nil {
		return fmt.Errorf("delete transactions: %w", err)
	}
	return nil
}
