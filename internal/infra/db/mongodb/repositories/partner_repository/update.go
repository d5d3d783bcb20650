package partner_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdatePartnerRepository struct {
	Db *mongo.Database
}

func NewUpdatePartnerRepository(db *mongo.Database) *UpdatePartnerRepository {
	return &UpdatePartnerRepository{Db: db}
}

func (r *UpdatePartnerRepository) Update(ctx context.Context, partner *models.Partner) (*models.Partner, error) {
	collection := r.Db.Collection(models.PartnerCollection)

	found, err := helpers.UpdateFields(ctx, collection, partner.Id, bson.M{
		"name":  partner.Name,
		"type":  partner.Type,
		"notes": partner.Notes,
	})
	if err != nil || !found {
		return nil, err
	}

	return helpers.FindOne[models.Partner](ctx, collection, bson.M{"_id": partner.Id})
}
