package partner_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindPartnersByWorkspaceIdRepository struct {
	Db *mongo.Database
}

func NewFindPartnersByWorkspaceIdRepository(db *mongo.Database) *FindPartnersByWorkspaceIdRepository {
	return &FindPartnersByWorkspaceIdRepository{Db: db}
}

func (r *FindPartnersByWorkspaceIdRepository) Find(ctx context.Context, workspaceId primitive.ObjectID, pagination *models.Pagination) (*models.PagedResponse[models.Partner], error) {
	return helpers.FindPage[models.Partner](
		ctx,
		r.Db.Collection(models.PartnerCollection),
		bson.M{"workspace_id": workspaceId},
		pagination,
		models.PartnerSortFields,
	)
}
