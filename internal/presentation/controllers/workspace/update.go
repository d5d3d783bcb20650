package workspace

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateWorkspaceController struct {
	UpdateWorkspaceRepository usecase.UpdateWorkspaceRepository
}

func NewUpdateWorkspaceController(updateWorkspaceRepository usecase.UpdateWorkspaceRepository) *UpdateWorkspaceController {
	return &UpdateWorkspaceController{UpdateWorkspaceRepository: updateWorkspaceRepository}
}

type UpdateWorkspaceControllerBody struct {
	Id   primitive.ObjectID `json:"id" validate:"required"`
	Name string             `json:"name" validate:"required,min=1,max=255"`
}

func (c *UpdateWorkspaceController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body UpdateWorkspaceControllerBody
	if response := helpers.DecodeBody(r, &body); response != nil {
		return response
	}

	workspace, err := c.UpdateWorkspaceRepository.Update(r.Req.Context(), &models.Workspace{Id: body.Id, Name: body.Name})
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when updating the workspace", err)
	}
	if workspace == nil {
		return helpers.NotFoundResponse("workspace")
	}

	return helpers.CreateResponse(workspace, http.StatusOK)
}
