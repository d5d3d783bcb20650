package transaction_repository

import (
	"context"
	"fmt"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateTransactionRepository struct {
	Db *mongo.Database
}

func NewCreateTransactionRepository(db *mongo.Database) *CreateTransactionRepository {
	return &CreateTransactionRepository{
		Db: db,
	}
}

func (r *CreateTransactionRepository) Create(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	collection := r.Db.Collection(models.TransactionCollection)

	now := helpers.Now()
	transaction.Id = primitive.NewObjectID()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	if _, err := collection.InsertOne(ctx, document(transaction)); err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	return transaction, nil
}

func (r *CreateTransactionRepository) CreateMany(ctx context.Context, transactions []models.Transaction) ([]models.Transaction, error) {
	if len(transactions) == 0 {
		return transactions, nil
	}

	collection := r.Db.Collection(models.TransactionCollection)

	docs := make([]any, len(transactions))
	now := helpers.Now()
	for i := range transactions {
		tx := &transactions[i]
		if tx.Id.IsZero() {
			tx.Id = primitive.NewObjectID()
		}
		tx.CreatedAt = now
		tx.UpdatedAt = now
		docs[i] = document(tx)
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return nil, fmt.Errorf("insert transactions: %w", err)
	}

	return transactions, nil
}
