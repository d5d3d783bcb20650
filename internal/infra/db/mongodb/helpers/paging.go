package helpers

import (
	"context"
	"errors"
	"fmt"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrInvalidSortField = errors.New("invalid sort field")

// BuildSort turns the requested orders into a sort document. Ties are always
// broken by _id ascending so that equal keys keep a stable order.
func BuildSort(orders []models.SortOrder, fields models.SortFields) (bson.D, error) {
	sort := bson.D{}
	seen := map[string]bool{}
	for _, order := range orders {
		name, ok := fields.Resolve(order.Field)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidSortField, order.Field)
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		direction := 1
		if order.Direction == models.SortDescending {
			direction = -1
		}
		sort = append(sort, bson.E{Key: name, Value: direction})
	}

	if !seen["_id"] {
		sort = append(sort, bson.E{Key: "_id", Value: 1})
	}

	return sort, nil
}

// LookupOne expands the id stored in localField into the document it
// references. Missing references leave the field absent.
func LookupOne(from string, localField string, as string) []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         from,
			"localField":   localField,
			"foreignField": "_id",
			"as":           as,
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$" + as,
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

// FindPage runs a paged aggregation over the documents matching filter. The
// extra stages run after the page has been cut.
func FindPage[T any](
	ctx context.Context,
	collection *mongo.Collection,
	filter bson.M,
	pagination *models.Pagination,
	fields models.SortFields,
	stages ...bson.D,
) (*models.PagedResponse[T], error) {
	sort, err := BuildSort(pagination.Sort, fields)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count %s: %w", collection.Name(), err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: sort}},
		{{Key: "$skip", Value: int64(pagination.Page) * int64(pagination.Size)}},
		{{Key: "$limit", Value: int64(pagination.Size)}},
	}
	pipeline = append(pipeline, stages...)

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection.Name(), err)
	}
	defer cursor.Close(ctx)

	var data []T
	if err := cursor.All(ctx, &data); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection.Name(), err)
	}

	return models.NewPagedResponse(pagination.Page, pagination.Size, total, data), nil
}

// FindOne returns nil without error when nothing matches.
func FindOne[T any](ctx context.Context, collection *mongo.Collection, filter bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	var result T
	err := collection.FindOne(ctx, filter).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection.Name(), err)
	}

	return &result, nil
}
