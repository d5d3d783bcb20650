package helpers

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Reference names a field holding the id of another document.
type Reference struct {
	Collection string
	Field      string
}

// IsReferenced reports whether any of the given fields points at id.
func IsReferenced(ctx context.Context, db *mongo.Database, id primitive.ObjectID, references ...Reference) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	for _, ref := range references {
		count, err := db.Collection(ref.Collection).CountDocuments(ctx, bson.M{ref.Field: id}, options.Count().SetLimit(1))
		if err != nil {
			return false, fmt.Errorf("count %s.%s: %w", ref.Collection, ref.Field, err)
		}
		if count > 0 {
			return true, nil
		}
	}

	return false, nil
}
