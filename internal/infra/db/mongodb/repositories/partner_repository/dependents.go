package partner_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PartnerDependentsRepository struct {
	Db *mongo.Database
}

func NewPartnerDependentsRepository(db *mongo.Database) *PartnerDependentsRepository {
	return &PartnerDependentsRepository{Db: db}
}

func (r *PartnerDependentsRepository) HasDependents(ctx context.Context, partnerId primitive.ObjectID) (bool, error) {
	return helpers.IsReferenced(ctx, r.Db, partnerId,
		helpers.Reference{Collection: models.AssetCollection, Field: "provider_id"},
		helpers.Reference{Collection: models.WalletCollection, Field: "provider_id"},
		helpers.Reference{Collection: models.TransactionCollection, Field: "partner_id"},
		helpers.Reference{Collection: models.RecurringPaymentCollection, Field: "partner_id"},
	)
}
