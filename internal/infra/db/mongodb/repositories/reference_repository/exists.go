package reference_repository

import (
	"context"
	"fmt"

	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReferenceExistsRepository struct {
	Db *mongo.Database
}

func NewReferenceExistsRepository(db *mongo.Database) *ReferenceExistsRepository {
	return &ReferenceExistsRepository{Db: db}
}

func (r *ReferenceExistsRepository) Exists(ctx context.Context, collection string, id primitive.ObjectID, workspaceId primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	count, err := r.Db.Collection(collection).CountDocuments(ctx,
		bson.M{"_id": id, "workspace_id": workspaceId},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, fmt.Errorf("check %s reference: %w", collection, err)
	}

	return count > 0, nil
}
