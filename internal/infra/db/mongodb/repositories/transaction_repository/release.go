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

type ReleaseGeneratedTransactionsRepository struct {
	Db *mongo.Database
}

func NewReleaseGeneratedTransactionsRepository(db *mongo.Database) *ReleaseGeneratedTransactionsRepository {
	return &ReleaseGeneratedTransactionsRepository{Db: db}
}

// Release deletes the open transactions of a recurring payment that have
// nothing booked yet. Whatever remains is detached from the payment.
func (r *ReleaseGeneratedTransactionsRepository) Release(ctx context.Context, sourceId primitive.ObjectID) error {
	open, err := findUnbooked(ctx, r.Db, bson.M{
		"source_id": sourceId,
		"status":    models.TransactionStatusOpen,
	})
	if err != nil {
		return err
	}

	ids := make([]primitive.ObjectID, 0, len(open))
	for _, tx := range open {
		ids = append(ids, tx.Id)
	}

	if err := NewDeleteTransactionRepository(r.Db).DeleteMany(ctx, ids); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	_, err = r.Db.Collection(models.TransactionCollection).UpdateMany(ctx,
		bson.M{"source_id": sourceId},
		bson.M{"$set": bson.M{"source_id": nil, "updated_at": helpers.Now()}},
	)
	if err != nil {
		return fmt.Errorf("detach transactions: %w", err)
	}

	return nil
}
