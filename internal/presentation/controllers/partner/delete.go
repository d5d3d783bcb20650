package partner

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

type DeletePartnerController struct {
	DeletePartnerRepository   usecase.DeletePartnerRepository
	FindPartnerByIdRepository usecase.FindPartnerByIdRepository
	DependentsRepository      usecase.DependentsRepository
}

func NewDeletePartnerController(
	deletePartnerRepository usecase.DeletePartnerRepository,
	findPartnerByIdRepository usecase.FindPartnerByIdRepository,
	dependentsRepository usecase.DependentsRepository,
) *DeletePartnerController {
	return &DeletePartnerController{
		DeletePartnerRepository:   deletePartnerRepository,
		FindPartnerByIdRepository: findPartnerByIdRepository,
		DependentsRepository:      dependentsRepository,
	}
}

func (c *DeletePartnerController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	partnerId, response := helpers.GetPathId(r, "id")
	if response != nil {
		return response
	}

	partner, err := c.FindPartnerByIdRepository.Find(ctx, partnerId)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the partner", err)
	}
	if partner == nil {
		return helpers.NotFoundResponse("partner")
	}

	hasDependents, err := c.DependentsRepository.HasDependents(ctx, partnerId)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when checking partner dependents", err)
	}
	if hasDependents {
		return helpers.DependentsResponse("partner")
	}

	if err := c.DeletePartnerRepository.Delete(ctx, partnerId); err != nil {
		return helpers.InternalErrorResponse("an error occurred when deleting the partner", err)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
