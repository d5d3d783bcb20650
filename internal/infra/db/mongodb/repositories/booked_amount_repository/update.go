package booked_amount_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateBookedAmountRepository struct {
	Db *mongo.Database
}

func NewUpdateBookedAmountRepository(db *mongo.Database) *UpdateBookedAmountRepository {
	return &UpdateBookedAmountRepository{Db: db}
}

// Update keeps the transaction a booked amount belongs to.
func (r *UpdateBookedAmountRepository) Update(ctx context.Context, booked *models.BookedAmount) (*models.BookedAmount, error) {
	collection := r.Db.Collection(models.BookedAmountCollection)

	found, err := helpers.UpdateFields(ctx, collection, booked.Id, bson.M{
		"amount":    booked.Amount,
		"date":      booked.Date,
		"asset_id":  booked.AssetId,
		"wallet_id": booked.WalletId,
		"notes":     booked.Notes,
	})
	if err != nil || !found {
		return nil, err
	}

	return helpers.FindOne[models.BookedAmount](ctx, collection, bson.M{"_id": booked.Id})
}
