package workspace

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

type CreateWorkspaceController struct {
	CreateWorkspaceRepository usecase.CreateWorkspaceRepository
}

func NewCreateWorkspaceController(createWorkspaceRepository usecase.CreateWorkspaceRepository) *CreateWorkspaceController {
	return &CreateWorkspaceController{CreateWorkspaceRepository: createWorkspaceRepository}
}

type CreateWorkspaceControllerBody struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

func (c *CreateWorkspaceController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateWorkspaceControllerBody
	if response := helpers.DecodeBody(r, &body); response != nil {
		return response
	}

	workspace, err := c.CreateWorkspaceRepository.Create(r.Req.Context(), &models.Workspace{Name: body.Name})
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when creating the workspace", err)
	}

	return helpers.CreateResponse(workspace, http.StatusCreated)
}
