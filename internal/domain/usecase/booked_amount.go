package usecase

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateBookedAmountRepository interface {
	Create(ctx context.Context, bookedAmount *models.BookedAmount) (*models.BookedAmount, error)
}

type FindBookedAmountsByTransactionIdRepository interface {
	Find(ctx context.Context, transactionId primitive.ObjectID, pagination *models.Pagination) (*models.PagedResponse[models.BookedAmount], error)
}

type FindBookedAmountByIdRepository interface {
	Find(ctx context.Context, bookedAmountId primitive.ObjectID) (*models.BookedAmount, error)
}

type UpdateBookedAmountRepository interface {
	Update(ctx context.Context, bookedAmount *models.BookedAmount) (*models.BookedAmount, error)
}

type DeleteBookedAmountRepository interface {
	Delete(ctx context.Context, bookedAmountId primitive.ObjectID) error
}
