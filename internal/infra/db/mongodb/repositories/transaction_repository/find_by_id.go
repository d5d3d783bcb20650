package transaction_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindTransactionByIdRepository struct {
	Db *mongo.Database
}

func NewFindTransactionByIdRepository(db *mongo.Database) *FindTransactionByIdRepository {
	return &FindTransactionByIdRepository{Db: db}
}

func (r *FindTransactionByIdRepository) Find(ctx context.Context, transactionId primitive.ObjectID) (*models.Transaction, error) {
	return helpers.FindOne[models.Transaction](ctx, r.Db.Collection(models.TransactionCollection), bson.M{"_id": transactionId})
}
