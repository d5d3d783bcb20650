package user_repository

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateUserRepository struct {
	Db *mongo.Database
}

func NewUpdateUserRepository(db *mongo.Database) *UpdateUserRepository {
	return &UpdateUserRepository{Db: db}
}

// Update leaves the password untouched when PasswordHash is empty.
func (r *UpdateUserRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	collection := r.Db.Collection(models.UserCollection)

	fields := bson.M{
		"name":  user.Name,
		"roles": user.Roles,
	}
	if user.PasswordHash != "" {
		fields["password_hash"] = user.PasswordHash
	}

	found, err := helpers.UpdateFields(ctx, collection, user.Id, fields)
	if err != nil || !found {
		return nil, err
	}

	return helpers.FindOne[models.User](ctx, collection, bson.M{"_id": user.Id})
}
