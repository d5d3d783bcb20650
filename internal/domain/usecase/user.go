package usecase

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateUserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
}

type FindUsersRepository interface {
	Find(ctx context.Context, pagination *models.Pagination) (*models.PagedResponse[models.User], error)
}

type FindUserByIdRepository interface {
	Find(ctx context.Context, userId primitive.ObjectID) (*models.User, error)
}

type FindUserByNameRepository interface {
	FindByName(ctx context.Context, name string) (*models.User, error)
}

type UpdateUserRepository interface {
	Update(ctx context.Context, user *models.User) (*models.User, error)
}

type DeleteUserRepository interface {
	Delete(ctx context.Context, userId primitive.ObjectID) error
}

// CountUsersRepository counts users, optionally restricted to a role.
type CountUsersRepository interface {
	Count(ctx context.Context, role string) (int64, error)
}
