package helpers

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Timeout bounds every single database round trip.
var Timeout = 15 * time.Second

func MongoHelper(ctx context.Context, uri string, databaseName string) (*mongo.Database, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetRegistry(NewRegistry())

	connectCtx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	log.WithField("database", databaseName).Info("MongoDB connection established")

	return client.Database(databaseName), nil
}

func DisconnectMongo(db *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	if err := db.Client().Disconnect(ctx); err != nil {
		log.WithError(err).Error("Error disconnecting from MongoDB")
		return
	}
	log.Info("Disconnected from MongoDB")
}
