package workspace_repository

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

type FindWorkspacesRepository struct {
	Db *mongo.Database
}

func NewFindWorkspacesRepository(db *mongo.Database) *FindWorkspacesRepository {
	return &FindWorkspacesRepository{Db: db}
}

func (r *FindWorkspacesRepository) Find(ctx context.Context, pagination *models.Pagination) (*models.PagedResponse[models.Workspace], error) {
	return helpers.FindPage[models.Workspace](
		ctx,
		r.Db.Collection(models.WorkspaceCollection),
		bson.M{},
		pagination,
		models.WorkspaceSortFields,
	)
}

func (r *FindWorkspacesRepository) FindAll(ctx context.Context) ([]models.Workspace, error) {
	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	cursor, err := r.Db.Collection(models.WorkspaceCollection).Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("find workspaces: %w", err)
	}
	defer cursor.Close(ctx)

	workspaces := []models.Workspace{}
	if err := cursor.All(ctx, &workspaces); err != nil {
		return nil, fmt.Errorf("decode workspaces: %w", err)
	}

	return workspaces, nil
}

func (r *FindWorkspacesRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	count, err := r.Db.Collection(models.WorkspaceCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count workspaces: %w", err)
	}
	return count, nil
}

type FindWorkspaceByIdRepository struct {
	Db *mongo.Database
}

func NewFindWorkspaceByIdRepository(db *mongo.Database) *FindWorkspaceByIdRepository {
	return &FindWorkspaceByIdRepository{Db: db}
}

func (r *FindWorkspaceByIdRepository) Find(ctx context.Context, workspaceId primitive.ObjectID) (*models.Workspace, error) {
	return helpers.FindOne[models.Workspace](ctx, r.Db.Collection(models.WorkspaceCollection), bson.M{"_id": workspaceId})
}
