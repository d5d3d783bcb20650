package setup

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

type CreateWorkspaceController struct {
	CreateWorkspaceRepository usecase.CreateWorkspaceRepository
	Stages                    *helpers.SetupStageResolver
}

func NewCreateWorkspaceController(
	createWorkspaceRepository usecase.CreateWorkspaceRepository,
	stages *helpers.SetupStageResolver,
) *CreateWorkspaceController {
	return &CreateWorkspaceController{
		CreateWorkspaceRepository: createWorkspaceRepository,
		Stages:                    stages,
	}
}

type CreateWorkspaceControllerBody struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

func (c *CreateWorkspaceController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	stage, err := c.Stages.Stage(ctx)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when resolving the setup stage", err)
	}
	if stage != models.SetupStageCreateWorkspace {
		return stageCompletedResponse()
	}

	var body CreateWorkspaceControllerBody
	if response := helpers.DecodeBody(r, &body); response != nil {
		return response
	}

	workspace, err := c.CreateWorkspaceRepository.Create(ctx, &models.Workspace{Name: body.Name})
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when creating the workspace", err)
	}

	return helpers.CreateResponse(workspace, http.StatusCreated)
}
