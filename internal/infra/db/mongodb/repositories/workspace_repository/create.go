package workspace_repository

import (
	"context"
	"fmt"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateWorkspaceRepository struct {
	Db *mongo.Database
}

func NewCreateWorkspaceRepository(db *mongo.Database) *CreateWorkspaceRepository {
	return &CreateWorkspaceRepository{Db: db}
}

func (r *CreateWorkspaceRepository) Create(ctx context.Context, workspace *models.Workspace) (*models.Workspace, error) {
	collection := r.Db.Collection(models.WorkspaceCollection)

	now := helpers.Now()
	workspace.Id = primitive.NewObjectID()
	workspace.CreatedAt = now
	workspace.UpdatedAt = now

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, bson.M{
		"_id":        workspace.Id,
		"name":       workspace.Name,
		"created_at": now,
		"updated_at": now,
	})
	if err != nil {
		return nil, fmt.Errorf("insert workspace: %w", err)
	}

	return workspace, nil
}
