package wallet

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateWalletController struct {
	CreateWalletRepository      usecase.CreateWalletRepository
	FindWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository
	ReferenceExistsRepository   usecase.ReferenceExistsRepository
}

func NewCreateWalletController(
	createWalletRepository usecase.CreateWalletRepository,
	findWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository,
	referenceExistsRepository usecase.ReferenceExistsRepository,
) *CreateWalletController {
	return &CreateWalletController{
		CreateWalletRepository:      createWalletRepository,
		FindWorkspaceByIdRepository: findWorkspaceByIdRepository,
		ReferenceExistsRepository:   referenceExistsRepository,
	}
}

type CreateWalletControllerBody struct {
	WorkspaceId primitive.ObjectID  `json:"workspaceId" validate:"required"`
	Name        string              `json:"name" validate:"required,min=1,max=255"`
	Notes       string              `json:"notes" validate:"max=1024"`
	ProviderId  *primitive.ObjectID `json:"providerId"`
	AssetId     *primitive.ObjectID `json:"assetId"`
}

func (c *CreateWalletController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	var body CreateWalletControllerBody
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

	wallet := &models.Wallet{
		WorkspaceId: workspace.Id,
		Name:        body.Name,
		Notes:       body.Notes,
		ProviderId:  helpers.OptionalId(body.ProviderId),
		AssetId:     helpers.OptionalId(body.AssetId),
	}
	if response := checkReferences(r, c.ReferenceExistsRepository, wallet); response != nil {
		return response
	}

	wallet, err = c.CreateWalletRepository.Create(ctx, wallet)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when creating the wallet", err)
	}

	return helpers.CreateResponse(wallet, http.StatusCreated)
}

func checkReferences(r presentationProtocols.HttpRequest, repo usecase.ReferenceExistsRepository, wallet *models.Wallet) *presentationProtocols.HttpResponse {
	return helpers.CheckReferences(r.Req.Context(), repo, wallet.WorkspaceId,
		helpers.Ref{Field: "providerId", Collection: models.PartnerCollection, Id: wallet.ProviderId},
		helpers.Ref{Field: "assetId", Collection: models.AssetCollection, Id: wallet.AssetId},
	)
}
