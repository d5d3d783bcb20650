package partner

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

type GetPartnersController struct {
	FindPartnersByWorkspaceIdRepository usecase.FindPartnersByWorkspaceIdRepository
}

func NewGetPartnersController(findPartners usecase.FindPartnersByWorkspaceIdRepository) *GetPartnersController {
	return &GetPartnersController{FindPartnersByWorkspaceIdRepository: findPartners}
}

func (c *GetPartnersController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	workspaceId, response := helpers.GetPathId(r, "workspace_id")
	if response != nil {
		return response
	}

	pagination, response := helpers.GetPagination(r.UrlParams, models.PartnerSortFields)
	if response != nil {
		return response
	}

	partners, err := c.FindPartnersByWorkspaceIdRepository.Find(r.Req.Context(), workspaceId, pagination)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding partners", err)
	}

	return helpers.CreateResponse(partners, http.StatusOK)
}
