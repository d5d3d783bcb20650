package recurring_payment_repository

import (
	"context"
	"fmt"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateRecurringPaymentRepository struct {
	Db *mongo.Database
}

func NewCreateRecurringPaymentRepository(db *mongo.Database) *CreateRecurringPaymentRepository {
	return &CreateRecurringPaymentRepository{Db: db}
}

func (r *CreateRecurringPaymentRepository) Create(ctx context.Context, payment *models.RecurringPayment) (*models.RecurringPayment, error) {
	collection := r.Db.Collection(models.RecurringPaymentCollection)

	now := helpers.Now()
	payment.Id = primitive.NewObjectID()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	doc := editableFields(payment)
	doc["_id"] = payment.Id
	doc["workspace_id"] = payment.WorkspaceId
	doc["last_transaction_date"] = payment.LastTransactionDate
	doc["created_at"] = now
	doc["updated_at"] = now

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	if _, err := collection.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert recurring payment: %w", err)
	}

	return payment, nil
}

func editableFields(payment *models.RecurringPayment) bson.M {
	return bson.M{
		"name":          payment.Name,
		"amount":        payment.Amount,
		"type":          payment.Type,
		"asset_id":      payment.AssetId,
		"wallet_id":     payment.WalletId,
		"partner_id":    payment.PartnerId,
		"notes":         payment.Notes,
		"cron_schedule": payment.CronSchedule,
		"not_before":    payment.NotBefore,
		"not_after":     payment.NotAfter,
		"status":        payment.Status,
	}
}
