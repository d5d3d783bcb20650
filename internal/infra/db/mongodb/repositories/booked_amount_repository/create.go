package booked_amount_repository

import (
	"context"
	"fmt"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateBookedAmountRepository struct {
	Db *mongo.Database
}

func NewCreateBookedAmountRepository(db *mongo.Database) *CreateBookedAmountRepository {
	return &CreateBookedAmountRepository{Db: db}
}

func (r *CreateBookedAmountRepository) Create(ctx context.Context, booked *models.BookedAmount) (*models.BookedAmount, error) {
	collection := r.Db.Collection(models.BookedAmountCollection)

	now := helpers.Now()
	booked.Id = primitive.NewObjectID()
	booked.CreatedAt = now
	booked.UpdatedAt = now

	doc := bson.M{
		"_id":            booked.Id,
		"transaction_id": booked.TransactionId,
		"amount":         booked.Amount,
		"date":           booked.Date,
		"asset_id":       booked.AssetId,
		"wallet_id":      booked.WalletId,
		"notes":          booked.Notes,
		"created_at":     now,
		"updated_at":     now,
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	if _, err := collection.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert booked amount: %w", err)
	}

	return booked, nil
}
