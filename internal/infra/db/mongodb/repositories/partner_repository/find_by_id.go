package partner_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindPartnerByIdRepository struct {
	Db *mongo.Database
}

func NewFindPartnerByIdRepository(db *mongo.Database) *FindPartnerByIdRepository {
	return &FindPartnerByIdRepository{Db: db}
}

func (r *FindPartnerByIdRepository) Find(ctx context.Context, partnerId primitive.ObjectID) (*models.Partner, error) {
	return helpers.FindOne[models.Partner](ctx, r.Db.Collection(models.PartnerCollection), bson.M{"_id": partnerId})
}
