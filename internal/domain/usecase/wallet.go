package usecase

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateWalletRepository interface {
	Create(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error)
}

type FindWalletsByWorkspaceIdRepository interface {
	Find(ctx context.Context, workspaceId primitive.ObjectID, pagination *models.Pagination) (*models.PagedResponse[models.Wallet], error)
}

type FindWalletByIdRepository interface {
	Find(ctx context.Context, walletId primitive.ObjectID) (*models.Wallet, error)
}

type UpdateWalletRepository interface {
	Update(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error)
}

type DeleteWalletRepository interface {
	Delete(ctx context.Context, walletId primitive.ObjectID) error
}
