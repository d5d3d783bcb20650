package partner

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreatePartnerController struct {
	CreatePartnerRepository     usecase.CreatePartnerRepository
	FindWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository
}

func NewCreatePartnerController(
	createPartnerRepository usecase.CreatePartnerRepository,
	findWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository,
) *CreatePartnerController {
	return &CreatePartnerController{
		CreatePartnerRepository:     createPartnerRepository,
		FindWorkspaceByIdRepository: findWorkspaceByIdRepository,
	}
}

type CreatePartnerControllerBody struct {
	WorkspaceId primitive.ObjectID `json:"workspaceId" validate:"required"`
	Name        string             `json:"name" validate:"required,min=1,max=255"`
	Type        models.PartnerType `json:"type" validate:"required,oneof=BANK COMPANY PERSON GOVERNMENTAL EXCHANGE OTHER"`
	Notes       string             `json:"notes" validate:"max=1024"`
}

func (c *CreatePartnerController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	var body CreatePartnerControllerBody
	if response := helpers.DecodeBody(r, &body); response != nil {
		return response
	}

	workspace, err := c.FindWorkspaceByIdRepository.Find(ctx, body.WorkspaceId)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the workspace", err)
	}
	if workspace == nil {
		return helpers.NotFoundResponse("workspace")
	}

	partner, err := c.CreatePartnerRepository.Create(ctx, &models.Partner{
		WorkspaceId: workspace.Id,
		Name:        body.Name,
		Type:        body.Type,
		Notes:       body.Notes,
	})
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when creating the partner", err)
	}

	return helpers.CreateResponse(partner, http.StatusCreated)
}
