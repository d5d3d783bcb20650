package transaction_repository

import (
	"context"
	"fmt"
	"time"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindPendingTransactionsRepository struct {
	Db *mongo.Database
}

func NewFindPendingTransactionsRepository(db *mongo.Database) *FindPendingTransactionsRepository {
	return &FindPendingTransactionsRepository{Db: db}
}

func (r *FindPendingTransactionsRepository) FindPending(ctx context.Context, sourceId primitive.ObjectID, after time.Time) ([]models.Transaction, error) {
	return findUnbooked(ctx, r.Db, bson.M{
		"source_id": sourceId,
		"date":      bson.M{"$gt": after},
	})
}

// findUnbooked lists the transactions matching filter without any booked amount.
func findUnbooked(ctx context.Context, db *mongo.Database, filter bson.M) ([]models.Transaction, error) {
	collection := db.Collection(models.TransactionCollection)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$lookup", Value: bson.M{
			"from":         models.BookedAmountCollection,
			"localField":   "_id",
			"foreignField": "transaction_id",
			"as":           "booked_amounts",
		}}},
		{{Key: "$match", Value: bson.M{"booked_amounts": bson.M{"$size": 0}}}},
		{{Key: "$project", Value: bson.M{"booked_amounts": 0}}},
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}}}},
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("find unbooked transactions: %w", err)
	}
	defer cursor.Close(ctx)

	transactions := []models.Transaction{}
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}

	return transactions, nil
}
