//go:build integration

// Package mongotest starts a throwaway MongoDB for the repository
// integration tests.
package mongotest

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
)

const Image = "mongo:7"

// Database returns a fresh database with the indexes created. The container
// is removed when the test ends.
func Database(t *testing.T) *mongo.Database {
	t.Helper()
	ctx := context.Background()

	container, err := mongodb.Run(ctx, Image)
	testcontainers.CleanupContainer(t, container)
	if err != nil {
		t.Fatalf("Failed to start MongoDB container: %v", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("Failed to get connection string: %v", err)
	}

	db, err := helpers.MongoHelper(ctx, uri, "finance_"+primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	t.Cleanup(func() { helpers.DisconnectMongo(db) })

	if err := helpers.EnsureIndexes(ctx, db); err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}

	return db
}
