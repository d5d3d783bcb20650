package asset

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateAssetController struct {
	CreateAssetRepository       usecase.CreateAssetRepository
	FindWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository
	ReferenceExistsRepository   usecase.ReferenceExistsRepository
}

func NewCreateAssetController(
	createAssetRepository usecase.CreateAssetRepository,
	findWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository,
	referenceExistsRepository usecase.ReferenceExistsRepository,
) *CreateAssetController {
	return &CreateAssetController{
		CreateAssetRepository:       createAssetRepository,
		FindWorkspaceByIdRepository: findWorkspaceByIdRepository,
		ReferenceExistsRepository:   referenceExistsRepository,
	}
}

type CreateAssetControllerBody struct {
	WorkspaceId primitive.ObjectID  `json:"workspaceId" validate:"required"`
	Name        string              `json:"name" validate:"required,min=1,max=255"`
	Code        string              `json:"code" validate:"required,min=3,max=12"`
	Symbol      string              `json:"symbol" validate:"max=10"`
	Notes       string              `json:"notes" validate:"max=1024"`
	ProviderId  *primitive.ObjectID `json:"providerId"`
}

func (c *CreateAssetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	var body CreateAssetControllerBody
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

	providerId := helpers.OptionalId(body.ProviderId)
	if response := helpers.CheckReferences(ctx, c.ReferenceExistsRepository, workspace.Id,
		helpers.Ref{Field: "providerId", Collection: models.PartnerCollection, Id: providerId},
	); response != nil {
		return response
	}

	asset, err := c.CreateAssetRepository.Create(ctx, &models.Asset{
		WorkspaceId: workspace.Id,
		Name:        body.Name,
		Code:        body.Code,
		Symbol:      body.Symbol,
		Notes:       body.Notes,
		ProviderId:  providerId,
	})
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when creating the asset", err)
	}

	return helpers.CreateResponse(asset, http.StatusCreated)
}
