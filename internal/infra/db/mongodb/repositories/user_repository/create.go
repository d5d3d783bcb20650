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

type CreateUserRepository struct {
	Db *mongo.Database
}

func NewCreateUserRepository(db *mongo.Database) *CreateUserRepository {
	return &CreateUserRepository{Db: db}
}

func (r *CreateUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	collection := r.Db.Collection(models.UserCollection)

	now := helpers.Now()
	user.Id = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, bson.M{
		"_id":           user.Id,
		"name":          user.Name,
		"password_hash": user.PasswordHash,
		"roles":         user.Roles,
		"created_at":    now,
		"updated_at":    now,
	})
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}
