package booked_amount_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteBookedAmountRepository struct {
	Db *mongo.Database
}

func NewDeleteBookedAmountRepository(db *mongo.Database) *DeleteBookedAmountRepository {
	return &DeleteBookedAmountRepository{Db: db}
}

func (r *DeleteBookedAmountRepository) Delete(ctx context.Context, bookedAmountId primitive.ObjectID) error {
	return helpers.DeleteById(ctx, r.Db.Collection(models.BookedAmountCollection), bookedAmountId)
}
