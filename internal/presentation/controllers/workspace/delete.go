package workspace

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

type DeleteWorkspaceController struct {
	DeleteWorkspaceRepository   usecase.DeleteWorkspaceRepository
	FindWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository
	DependentsRepository        usecase.DependentsRepository
}

func NewDeleteWorkspaceController(
	deleteWorkspaceRepository usecase.DeleteWorkspaceRepository,
	findWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository,
	dependentsRepository usecase.DependentsRepository,
) *DeleteWorkspaceController {
	return &DeleteWorkspaceController{
		DeleteWorkspaceRepository:   deleteWorkspaceRepository,
		FindWorkspaceByIdRepository: findWorkspaceByIdRepository,
		DependentsRepository:        dependentsRepository,
	}
}

func (c *DeleteWorkspaceController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	workspaceId, response := helpers.GetPathId(r, "id")
	if response != nil {
		return response
	}

	workspace, err := c.FindWorkspaceByIdRepository.Find(ctx, workspaceId)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the workspace", err)
	}
	if workspace == nil {
		return helpers.NotFoundResponse("workspace")
	}

	hasDependents, err := c.DependentsRepository.HasDependents(ctx, workspaceId)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when checking workspace dependents", err)
	}
	if hasDependents {
		return helpers.DependentsResponse("workspace")
	}

	if err := c.DeleteWorkspaceRepository.Delete(ctx, workspaceId); err != nil {
		return helpers.InternalErrorResponse("an error occurred when deleting the workspace", err)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
