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

type FindTransactionsByWorkspaceIdRepository struct {
	Db *mongo.Database
}

func NewFindTransactionsByWorkspaceIdRepository(db *mongo.Database) *FindTransactionsByWorkspaceIdRepository {
	return &FindTransactionsByWorkspaceIdRepository{Db: db}
}

func (r *FindTransactionsByWorkspaceIdRepository) Find(ctx context.Context, workspaceId primitive.ObjectID, pagination *models.Pagination) (*models.PagedResponse[models.Transaction], error) {
	return helpers.FindPage[models.Transaction](
		ctx,
		r.Db.Collection(models.TransactionCollection),
		bson.M{"workspace_id": workspaceId},
		pagination,
		models.TransactionSortFields,
		expandStages()...,
	)
}

type FindAllTransactionsRepository struct {
	Db *mongo.Database
}

func NewFindAllTransactionsRepository(db *mongo.Database) *FindAllTransactionsRepository {
	return &FindAllTransactionsRepository{Db: db}
}

func (r *FindAllTransactionsRepository) FindAll(ctx context.Context, workspaceId primitive.ObjectID) ([]models.Transaction, error) {
	collection := r.Db.Collection(models.TransactionCollection)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"workspace_id": workspaceId}}},
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}}}},
	}
	pipeline = append(pipeline, expandStages()...)

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer cursor.Close(ctx)

	transactions := []models.Transaction{}
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}

	return transactions, nil
}
