package workspace_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateWorkspaceRepository struct {
	Db *mongo.Database
}

func NewUpdateWorkspaceRepository(db *mongo.Database) *UpdateWorkspaceRepository {
	return &UpdateWorkspaceRepository{Db: db}
}

func (r *UpdateWorkspaceRepository) Update(ctx context.Context, workspace *models.Workspace) (*models.Workspace, error) {
	collection := r.Db.Collection(models.WorkspaceCollection)

	found, err := helpers.UpdateFields(ctx, collection, workspace.Id, bson.M{"name": workspace.Name})
	if err != nil || !found {
		return nil, err
	}

	return helpers.FindOne[models.Workspace](ctx, collection, bson.M{"_id": workspace.Id})
}
