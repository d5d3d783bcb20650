package workspace_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteWorkspaceRepository struct {
	Db *mongo.Database
}

func NewDeleteWorkspaceRepository(db *mongo.Database) *DeleteWorkspaceRepository {
	return &DeleteWorkspaceRepository{Db: db}
}

func (r *DeleteWorkspaceRepository) Delete(ctx context.Context, workspaceId primitive.ObjectID) error {
	return helpers.DeleteById(ctx, r.Db.Collection(models.WorkspaceCollection), workspaceId)
}

type WorkspaceDependentsRepository struct {
	Db *mongo.Database
}

func NewWorkspaceDependentsRepository(db *mongo.Database) *WorkspaceDependentsRepository {
	return &WorkspaceDependentsRepository{Db: db}
}

// HasDependents reports whether any scoped document still lives in the workspace.
func (r *WorkspaceDependentsRepository) HasDependents(ctx context.Context, workspaceId primitive.ObjectID) (bool, error) {
	references := make([]helpers.Reference, len(models.WorkspaceScopedCollections))
	for i, name := range models.WorkspaceScopedCollections {
		references[i] = helpers.Reference{Collection: name, Field: "workspace_id"}
	}
	return helpers.IsReferenced(ctx, r.Db, workspaceId, references...)
}
