package wallet

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateWalletController struct {
	UpdateWalletRepository    usecase.UpdateWalletRepository
	FindWalletByIdRepository  usecase.FindWalletByIdRepository
	ReferenceExistsRepository usecase.ReferenceExistsRepository
}

func NewUpdateWalletController(
	updateWalletRepository usecase.UpdateWalletRepository,
	findWalletByIdRepository usecase.FindWalletByIdRepository,
	referenceExistsRepository usecase.ReferenceExistsRepository,
) *UpdateWalletController {
	return &UpdateWalletController{
		UpdateWalletRepository:    updateWalletRepository,
		FindWalletByIdRepository:  findWalletByIdRepository,
		ReferenceExistsRepository: referenceExistsRepository,
	}
}

type UpdateWalletControllerBody struct {
	Id         primitive.ObjectID  `json:"id" validate:"required"`
	Name       string              `json:"name" validate:"required,min=1,max=255"`
	Notes      string              `json:"notes" validate:"max=1024"`
	ProviderId *primitive.ObjectID `json:"providerId"`
	AssetId    *primitive.ObjectID `json:"assetId"`
}

func (c *UpdateWalletController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	var body UpdateWalletControllerBody
	if response := helpers.DecodeBody(r, &body); response != nil {
		return response
	}

	existing, err := c.FindWalletByIdRepository.Find(ctx, body.Id)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the wallet", err)
	}
	if existing == nil {
		return helpers.NotFoundResponse("wallet")
	}

	wallet := &models.Wallet{
		Id:          existing.Id,
		WorkspaceId: existing.WorkspaceId,
		Name:        body.Name,
		Notes:       body.Notes,
		ProviderId:  helpers.OptionalId(body.ProviderId),
		AssetId:     helpers.OptionalId(body.AssetId),
	}
	if response := checkReferences(r, c.ReferenceExistsRepository, wallet); response != nil {
		return response
	}

	wallet, err = c.UpdateWalletRepository.Update(ctx, wallet)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when updating the wallet", err)
	}
	if wallet == nil {
		return helpers.NotFoundResponse("wallet")
	}

	return helpers.CreateResponse(wallet, http.StatusOK)
}
