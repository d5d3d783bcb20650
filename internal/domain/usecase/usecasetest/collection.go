// Package usecasetest holds in-memory implementations of the repository
// interfaces for tests.
package usecasetest

import (
	"context"
	"sync"
	"time"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection is an in-memory stand-in for a mongo collection. Err, when set,
// is returned by every operation.
type Collection[T any] struct {
	mu     sync.Mutex
	items  []T
	getId  func(*T) primitive.ObjectID
	setId  func(*T, primitive.ObjectID)
	parent func(*T) primitive.ObjectID
	Err    error
}

func NewCollection[T any](
	getId func(*T) primitive.ObjectID,
	setId func(*T, primitive.ObjectID),
	parent func(*T) primitive.ObjectID,
) *Collection[T] {
	return &Collection[T]{getId: getId, setId: setId, parent: parent}
}

func (c *Collection[T]) Create(_ context.Context, item *T) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}

	c.setId(item, primitive.NewObjectID())
	c.items = append(c.items, *item)
	created := *item
	return &created, nil
}

func (c *Collection[T]) CreateMany(ctx context.Context, items []T) ([]T, error) {
	created := make([]T, 0, len(items))
	for i := range items {
		item, err := c.Create(ctx, &items[i])
		if err != nil {
			return nil, err
		}
		created = append(created, *item)
	}
	return created, nil
}

// Update returns nil when no item has the same id.
func (c *Collection[T]) Update(_ context.Context, item *T) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}

	for i := range c.items {
		if c.getId(&c.items[i]) == c.getId(item) {
			c.items[i] = *item
			updated := *item
			return &updated, nil
		}
	}
	return nil, nil
}

func (c *Collection[T]) Delete(_ context.Context, id primitive.ObjectID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}

	for i := range c.items {
		if c.getId(&c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (c *Collection[T]) DeleteMany(ctx context.Context, ids []primitive.ObjectID) error {
	for _, id := range ids {
		if err := c.Delete(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// Get returns a copy of the stored item or nil.
func (c *Collection[T]) Get(id primitive.ObjectID) *T {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.getId(&c.items[i]) == id {
			item := c.items[i]
			return &item
		}
	}
	return nil
}

func (c *Collection[T]) All() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T{}, c.items...)
}

// Put stores item as is, keeping its id.
func (c *Collection[T]) Put(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getId(&item).IsZero() {
		c.setId(&item, primitive.NewObjectID())
	}
	c.items = append(c.items, item)
	return item
}

func (c *Collection[T]) ById() *ByIdFinder[T] {
	return &ByIdFinder[T]{c: c}
}

func (c *Collection[T]) ByParent() *ParentFinder[T] {
	return &ParentFinder[T]{c: c}
}

type ByIdFinder[T any] struct {
	c *Collection[T]
}

func (f *ByIdFinder[T]) Find(_ context.Context, id primitive.ObjectID) (*T, error) {
	if f.c.Err != nil {
		return nil, f.c.Err
	}
	return f.c.Get(id), nil
}

// ParentFinder pages the items owned by a workspace (or transaction) in
// insertion order. Sort orders are ignored.
type ParentFinder[T any] struct {
	c *Collection[T]
}

func (f *ParentFinder[T]) Find(_ context.Context, parentId primitive.ObjectID, pagination *models.Pagination) (*models.PagedResponse[T], error) {
	if f.c.Err != nil {
		return nil, f.c.Err
	}

	var matching []T
	for _, item := range f.c.All() {
		if f.c.parent == nil || f.c.parent(&item) == parentId {
			matching = append(matching, item)
		}
	}

	return page(matching, pagination), nil
}

func page[T any](items []T, pagination *models.Pagination) *models.PagedResponse[T] {
	start := pagination.Page * pagination.Size
	if start > len(items) {
		start = len(items)
	}
	end := start + pagination.Size
	if end > len(items) {
		end = len(items)
	}
	return models.NewPagedResponse(pagination.Page, pagination.Size, int64(len(items)), items[start:end])
}

func stamp(created *time.Time, updated *time.Time) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	*created = now
	*updated = now
}
