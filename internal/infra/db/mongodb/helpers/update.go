package helpers

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Now is the clock used for created_at and updated_at, truncated to the
// precision mongo stores.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// UpdateFields sets fields on the document with the given id. updated_at is
// only touched when a value actually changed, so resubmitting the same values
// leaves the document as it was. It reports whether the document exists.
func UpdateFields(ctx context.Context, collection *mongo.Collection, id primitive.ObjectID, fields bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	filter := bson.M{"_id": id}
	result, err := collection.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return false, fmt.Errorf("update %s: %w", collection.Name(), err)
	}
	if result.MatchedCount == 0 {
		return false, nil
	}

	if result.ModifiedCount > 0 {
		_, err = collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"updated_at": Now()}})
		if err != nil {
			return false, fmt.Errorf("update %s: %w", collection.Name(), err)
		}
	}

	return true, nil
}

// DeleteById removes a single document, missing documents are not an error.
func DeleteById(ctx context.Context, collection *mongo.Collection, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	if _, err := collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete %s: %w", collection.Name(), err)
	}
	return nil
}
