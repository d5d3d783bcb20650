package usecase

import (
	"context"
	"time"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateRecurringPaymentRepository interface {
	Create(ctx context.Context, payment *models.RecurringPayment) (*models.RecurringPayment, error)
}

type FindRecurringPaymentsByWorkspaceIdRepository interface {
	Find(ctx context.Context, workspaceId primitive.ObjectID, pagination *models.Pagination) (*models.PagedResponse[models.RecurringPayment], error)
}

type FindActiveRecurringPaymentsRepository interface {
	FindActive(ctx context.Context, workspaceId primitive.ObjectID) ([]models.RecurringPayment, error)
}

type FindRecurringPaymentByIdRepository interface {
	Find(ctx context.Context, paymentId primitive.ObjectID) (*models.RecurringPayment, error)
}

type UpdateRecurringPaymentRepository interface {
	Update(ctx context.Context, payment *models.RecurringPayment) (*models.RecurringPayment, error)
}

// UpdateRecurringPaymentStateRepository persists the fields the generation
// maintains itself.
type UpdateRecurringPaymentStateRepository interface {
	UpdateState(ctx context.Context, paymentId primitive.ObjectID, status models.RecurringPaymentStatus, lastTransactionDate *time.Time) error
}

type DeleteRecurringPaymentRepository interface {
	Delete(ctx context.Context, paymentId primitive.ObjectID) error
}
