package user_repository

import (
	"context"
	"fmt"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindUsersRepository struct {
	Db *mongo.Database
}

func NewFindUsersRepository(db *mongo.Database) *FindUsersRepository {
	return &FindUsersRepository{Db: db}
}

func (r *FindUsersRepository) Find(ctx context.Context, pagination *models.Pagination) (*models.PagedResponse[models.User], error) {
	return helpers.FindPage[models.User](
		ctx,
		r.Db.Collection(models.UserCollection),
		bson.M{},
		pagination,
		models.UserSortFields,
	)
}

// Count counts all users when role is empty.
func (r *FindUsersRepository) Count(ctx context.Context, role string) (int64, error) {
	filter := bson.M{}
	if role != "" {
		filter["roles"] = role
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	count, err := r.Db.Collection(models.UserCollection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

type FindUserByIdRepository struct {
	Db *mongo.Database
}

func NewFindUserByIdRepository(db *mongo.Database) *FindUserByIdRepository {
	return &FindUserByIdRepository{Db: db}
}

func (r *FindUserByIdRepository) Find(ctx context.Context, userId primitive.ObjectID) (*models.User, error) {
	return helpers.FindOne[models.User](ctx, r.Db.Collection(models.UserCollection), bson.M{"_id": userId})
}

type FindUserByNameRepository struct {
	Db *mongo.Database
}

func NewFindUserByNameRepository(db *mongo.Database) *FindUserByNameRepository {
	return &FindUserByNameRepository{Db: db}
}

func (r *FindUserByNameRepository) FindByName(ctx context.Context, name string) (*models.User, error) {
	return helpers.FindOne[models.User](ctx, r.Db.Collection(models.UserCollection), bson.M{"name": name})
}
