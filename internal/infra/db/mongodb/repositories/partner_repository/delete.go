package partner_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeletePartnerRepository struct {
	Db *mongo.Database
}

func NewDeletePartnerRepository(db *mongo.Database) *DeletePartnerRepository {
	return &DeletePartnerRepository{Db: db}
}

func (r *DeletePartnerRepository) Delete(ctx context.Context, partnerId primitive.ObjectID) error {
	return helpers.DeleteById(ctx, r.Db.Collection(models.PartnerCollection), partnerId)
}
