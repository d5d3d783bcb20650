// Package entity holds the generic pieces every administered resource is
// built from: a capability adapter (Functions), a paged list, the edit
// dialog with its form and the delete confirmation.
package entity

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/domain/models"
)

// Query selects one page of a resource inside a workspace. Resources that
// are not workspace scoped ignore WorkspaceId.
type Query struct {
	Page        int
	Size        int
	Sort        []models.SortOrder
	WorkspaceId primitive.ObjectID
}

// Functions adapts one REST resource. Errors are returned as received, no
// retry or translation happens here.
type Functions[E any, ID comparable] interface {
	List(ctx context.Context, query Query) (*models.PagedResponse[E], error)
	Delete(ctx context.Context, id ID) error
	ToID(entity E) ID
	Format(entity E) string
}

// Cell is one rendered value. Negative marks amounts below zero.
type Cell struct {
	Text     string
	Negative bool
}

type Column[E any] struct {
	Title string
	Width int
	// Sort is the field name sent to the server, empty when the column
	// cannot be sorted.
	Sort   string
	Render func(entity E) Cell
}

// Action is an extra row action next to edit and delete.
type Action[E any] struct {
	Key   string
	Label string
	Run   func(ctx context.Context, entity E) (string, error)
}
