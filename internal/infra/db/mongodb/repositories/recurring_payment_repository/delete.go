package recurring_payment_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteRecurringPaymentRepository struct {
	Db *mongo.Database
}

func NewDeleteRecurringPaymentRepository(db *mongo.Database) *DeleteRecurringPaymentRepository {
	return &DeleteRecurringPaymentRepository{Db: db}
}

func (r *DeleteRecurringPaymentRepository) Delete(ctx context.Context, paymentId primitive.ObjectID) error {
	return helpers.DeleteById(ctx, r.Db.Collection(models.RecurringPaymentCollection), paymentId)
}
