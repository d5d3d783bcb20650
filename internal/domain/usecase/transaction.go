package usecase

import (
	"context"
	"time"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateTransactionRepository interface {
	Create(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error)
}

type CreateTransactionsRepository interface {
	CreateMany(ctx context.Context, transactions []models.Transaction) ([]models.Transaction, error)
}

type FindTransactionsByWorkspaceIdRepository interface {
	Find(ctx context.Context, workspaceId primitive.ObjectID, pagination *models.Pagination) (*models.PagedResponse[models.Transaction], error)
}

// FindAllTransactionsRepository returns every transaction of a workspace,
// ordered by date, with booked sums. Used by the export.
type FindAllTransactionsRepository interface {
	FindAll(ctx context.Context, workspaceId primitive.ObjectID) ([]models.Transaction, error)
}

type FindTransactionByIdRepository interface {
	Find(ctx context.Context, transactionId primitive.ObjectID) (*models.Transaction, error)
}

// FindPendingTransactionsRepository lists generated transactions of a
// recurring payment dated after the given time that have nothing booked.
type FindPendingTransactionsRepository interface {
	FindPending(ctx context.Context, sourceId primitive.ObjectID, after time.Time) ([]models.Transaction, error)
}

type UpdateTransactionRepository interface {
	Update(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error)
}

type DeleteTransactionRepository interface {
	Delete(ctx context.Context, transactionId primitive.ObjectID) error
}

type DeleteTransactionsRepository interface {
	DeleteMany(ctx context.Context, transactionIds []primitive.ObjectID) error
}

// ReleaseGeneratedTransactionsRepository removes the open, unbooked
// transactions of a recurring payment and detaches the remaining ones.
type ReleaseGeneratedTransactionsRepository interface {
	Release(ctx context.Context, sourceId primitive.ObjectID) error
}
