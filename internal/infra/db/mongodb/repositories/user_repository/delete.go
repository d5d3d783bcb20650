package user_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteUserRepository struct {
	Db *mongo.Database
}

func NewDeleteUserRepository(db *mongo.Database) *DeleteUserRepository {
	return &DeleteUserRepository{Db: db}
}

func (r *DeleteUserRepository) Delete(ctx context.Context, userId primitive.ObjectID) error {
	return helpers.DeleteById(ctx, r.Db.Collection(models.UserCollection), userId)
}
