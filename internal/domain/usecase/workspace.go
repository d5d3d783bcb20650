package usecase

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateWorkspaceRepository interface {
	Create(ctx context.Context, workspace *models.Workspace) (*models.Workspace, error)
}

type FindWorkspacesRepository interface {
	Find(ctx context.Context, pagination *models.Pagination) (*models.PagedResponse[models.Workspace], error)
}

// FindAllWorkspacesRepository is used by background jobs iterating every workspace.
type FindAllWorkspacesRepository interface {
	FindAll(ctx context.Context) ([]models.Workspace, error)
}

type FindWorkspaceByIdRepository interface {
	Find(ctx context.Context, workspaceId primitive.ObjectID) (*models.Workspace, error)
}

type UpdateWorkspaceRepository interface {
	Update(ctx context.Context, workspace *models.Workspace) (*models.Workspace, error)
}

type DeleteWorkspaceRepository interface {
	Delete(ctx context.Context, workspaceId primitive.ObjectID) error
}

type CountWorkspacesRepository interface {
	Count(ctx context.Context) (int64, error)
}

// DependentsRepository reports whether other documents still reference the
// given id, blocking its deletion.
type DependentsRepository interface {
	HasDependents(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// ReferenceExistsRepository checks that an id sent by a client points at a
// document of the same workspace.
type ReferenceExistsRepository interface {
	Exists(ctx context.Context, collection string, id primitive.ObjectID, workspaceId primitive.ObjectID) (bool, error)
}
