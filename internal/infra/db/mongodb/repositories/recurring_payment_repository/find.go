package recurring_payment_repository

import (
	"context"
	"fmt"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindRecurringPaymentsByWorkspaceIdRepository struct {
	Db *mongo.Database
}

func NewFindRecurringPaymentsByWorkspaceIdRepository(db *mongo.Database) *FindRecurringPaymentsByWorkspaceIdRepository {
	return &FindRecurringPaymentsByWorkspaceIdRepository{Db: db}
}

func (r *FindRecurringPaymentsByWorkspaceIdRepository) Find(ctx context.Context, workspaceId primitive.ObjectID, pagination *models.Pagination) (*models.PagedResponse[models.RecurringPayment], error) {
	stages := helpers.LookupOne(models.AssetCollection, "asset_id", "asset")
	stages = append(stages, helpers.LookupOne(models.WalletCollection, "wallet_id", "wallet")...)
	stages = append(stages, helpers.LookupOne(models.PartnerCollection, "partner_id", "partner")...)

	return helpers.FindPage[models.RecurringPayment](
		ctx,
		r.Db.Collection(models.RecurringPaymentCollection),
		bson.M{"workspace_id": workspaceId},
		pagination,
		models.RecurringPaymentSortFields,
		stages...,
	)
}

type FindActiveRecurringPaymentsRepository struct {
	Db *mongo.Database
}

func NewFindActiveRecurringPaymentsRepository(db *mongo.Database) *FindActiveRecurringPaymentsRepository {
	return &FindActiveRecurringPaymentsRepository{Db: db}
}

func (r *FindActiveRecurringPaymentsRepository) FindActive(ctx context.Context, workspaceId primitive.ObjectID) ([]models.RecurringPayment, error) {
	collection := r.Db.Collection(models.RecurringPaymentCollection)

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx,
		bson.M{"workspace_id": workspaceId, "status": models.RecurringPaymentStatusActive},
		options.Find().SetSort(bson.M{"_id": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("find active recurring payments: %w", err)
	}
	defer cursor.Close(ctx)

	payments := []models.RecurringPayment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decode recurring payments: %w", err)
	}

	return payments, nil
}

type FindRecurringPaymentByIdRepository struct {
	Db *mongo.Database
}

func NewFindRecurringPaymentByIdRepository(db *mongo.Database) *FindRecurringPaymentByIdRepository {
	return &FindRecurringPaymentByIdRepository{Db: db}
}

func (r *FindRecurringPaymentByIdRepository) Find(ctx context.Context, paymentId primitive.ObjectID) (*models.RecurringPayment, error) {
	return helpers.FindOne[models.RecurringPayment](ctx, r.Db.Collection(models.RecurringPaymentCollection), bson.M{"_id": paymentId})
}
