package helpers

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/familyledger/finance-backend/internal/domain/models"
)

var indexes = map[string][]mongo.IndexModel{
	models.UserCollection: {
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	models.AssetCollection:            {workspaceIndex()},
	models.PartnerCollection:          {workspaceIndex()},
	models.WalletCollection:           {workspaceIndex()},
	models.RecurringPaymentCollection: {workspaceIndex()},
	models.TransactionCollection: {
		workspaceIndex(),
		{Keys: bson.D{{Key: "source_id", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "internal_ref_id", Value: 1}}},
	},
	models.BookedAmountCollection: {
		{Keys: bson.D{{Key: "transaction_id", Value: 1}}},
	},
}

func workspaceIndex() mongo.IndexModel {
	return mongo.IndexModel{Keys: bson.D{{Key: "workspace_id", Value: 1}, {Key: "_id", Value: 1}}}
}

// EnsureIndexes creates the indexes the queries rely on. Existing indexes
// with the same keys are left alone.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	for collection, list := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, list); err != nil {
			return fmt.Errorf("create indexes on %s: %w", collection, err)
		}
	}
	return nil
}
