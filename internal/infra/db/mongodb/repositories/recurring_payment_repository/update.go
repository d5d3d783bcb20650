package recurring_payment_repository

import (
	"context"
	"fmt"
	"time"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateRecurringPaymentRepository struct {
	Db *mongo.Database
}

func NewUpdateRecurringPaymentRepository(db *mongo.Database) *UpdateRecurringPaymentRepository {
	return &UpdateRecurringPaymentRepository{Db: db}
}

func (r *UpdateRecurringPaymentRepository) Update(ctx context.Context, payment *models.RecurringPayment) (*models.RecurringPayment, error) {
	collection := r.Db.Collection(models.RecurringPaymentCollection)

	found, err := helpers.UpdateFields(ctx, collection, payment.Id, editableFields(payment))
	if err != nil || !found {
		return nil, err
	}

	return helpers.FindOne[models.RecurringPayment](ctx, collection, bson.M{"_id": payment.Id})
}

type UpdateRecurringPaymentStateRepository struct {
	Db *mongo.Database
}

func NewUpdateRecurringPaymentStateRepository(db *mongo.Database) *UpdateRecurringPaymentStateRepository {
	return &UpdateRecurringPaymentStateRepository{Db: db}
}

func (r *UpdateRecurringPaymentStateRepository) UpdateState(ctx context.Context, paymentId primitive.ObjectID, status models.RecurringPaymentStatus, lastTransactionDate *time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	_, err := r.Db.Collection(models.RecurringPaymentCollection).UpdateOne(ctx,
		bson.M{"_id": paymentId},
		bson.M{"$set": bson.M{
			"status":                status,
			"last_transaction_date": lastTransactionDate,
			"updated_at":            helpers.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("update recurring payment state: %w", err)
	}

	return nil
}
