package booked_amount_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindBookedAmountsByTransactionIdRepository struct {
	Db *mongo.Database
}

func NewFindBookedAmountsByTransactionIdRepository(db *mongo.Database) *FindBookedAmountsByTransactionIdRepository {
	return &FindBookedAmountsByTransactionIdRepository{Db: db}
}

func (r *FindBookedAmountsByTransactionIdRepository) Find(ctx context.Context, transactionId primitive.ObjectID, pagination *models.Pagination) (*models.PagedResponse[models.BookedAmount], error) {
	return helpers.FindPage[models.BookedAmount](
		ctx,
		r.Db.Collection(models.BookedAmountCollection),
		bson.M{"transaction_id": transactionId},
		pagination,
		models.BookedAmountSortFields,
	)
}

type FindBookedAmountByIdRepository struct {
	Db *mongo.Database
}

func NewFindBookedAmountByIdRepository(db *mongo.Database) *FindBookedAmountByIdRepository {
	return &FindBookedAmountByIdRepository{Db: db}
}

func (r *FindBookedAmountByIdRepository) Find(ctx context.Context, bookedAmountId primitive.ObjectID) (*models.BookedAmount, error) {
	return helpers.FindOne[models.BookedAmount](ctx, r.Db.Collection(models.BookedAmountCollection), bson.M{"_id": bookedAmountId})
}
