package workspace

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

// GetWorkspacesController lists every workspace, they are shared by all users.
type GetWorkspacesController struct {
	FindWorkspacesRepository usecase.FindWorkspacesRepository
}

func NewGetWorkspacesController(findWorkspaces usecase.FindWorkspacesRepository) *GetWorkspacesController {
	return &GetWorkspacesController{FindWorkspacesRepository: findWorkspaces}
}

func (c *GetWorkspacesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	pagination, response := helpers.GetPagination(r.UrlParams, models.WorkspaceSortFields)
	if response != nil {
		return response
	}

	workspaces, err := c.FindWorkspacesRepository.Find(r.Req.Context(), pagination)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding workspaces", err)
	}

	return helpers.CreateResponse(workspaces, http.StatusOK)
}
