package partner_repository

import (
	"context"
	"fmt"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreatePartnerRepository struct {
	Db *mongo.Database
}

func NewCreatePartnerRepository(db *mongo.Database) *CreatePartnerRepository {
	return &CreatePartnerRepository{Db: db}
}

func (r *CreatePartnerRepository) Create(ctx context.Context, partner *models.Partner) (*models.Partner, error) {
	collection := r.Db.Collection(models.PartnerCollection)

	now := helpers.Now()
	partner.Id = primitive.NewObjectID()
	partner.CreatedAt = now
	partner.UpdatedAt = now

	doc := bson.M{
		"_id":          partner.Id,
		"workspace_id": partner.WorkspaceId,
		"name":         partner.Name,
		"type":         partner.Type,
		"notes":        partner.Notes,
		"created_at":   now,
		"updated_at":   now,
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	if _, err := collection.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert partner: %w", err)
	}

	return partner, nil
}
