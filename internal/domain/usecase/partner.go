package usecase

import (
	"context"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreatePartnerRepository interface {
	Create(ctx context.Context, partner *models.Partner) (*models.Partner, error)
}

type FindPartnersByWorkspaceIdRepository interface {
	Find(ctx context.Context, workspaceId primitive.ObjectID, pagination *models.Pagination) (*models.PagedResponse[models.Partner], error)
}

type FindPartnerByIdRepository interface {
	Find(ctx context.Context, partnerId primitive.ObjectID) (*models.Partner, error)
}

type UpdatePartnerRepository interface {
	Update(ctx context.Context, partner *models.Partner) (*models.Partner, error)
}

type DeletePartnerRepository interface {
	Delete(ctx context.Context, partnerId primitive.ObjectID) error
}
