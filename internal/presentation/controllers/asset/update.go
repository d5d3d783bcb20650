package asset

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateAssetController serves both PUT and PATCH. The body always carries
// the complete asset.
type UpdateAssetController struct {
	UpdateAssetRepository     usecase.UpdateAssetRepository
	FindAssetByIdRepository   usecase.FindAssetByIdRepository
	ReferenceExistsRepository usecase.ReferenceExistsRepository
}

func NewUpdateAssetController(
	updateAssetRepository usecase.UpdateAssetRepository,
	findAssetByIdRepository usecase.FindAssetByIdRepository,
	referenceExistsRepository usecase.ReferenceExistsRepository,
) *UpdateAssetController {
	return &UpdateAssetController{
		UpdateAssetRepository:     updateAssetRepository,
		FindAssetByIdRepository:   findAssetByIdRepository,
		ReferenceExistsRepository: referenceExistsRepository,
	}
}

type UpdateAssetControllerBody struct {
	Id         primitive.ObjectID  `json:"id" validate:"required"`
	Name       string              `json:"name" validate:"required,min=1,max=255"`
	Code       string              `json:"code" validate:"required,min=3,max=12"`
	Symbol     string              `json:"symbol" validate:"max=10"`
	Notes      string              `json:"notes" validate:"max=1024"`
	ProviderId *primitive.ObjectID `json:"providerId"`
}

func (c *UpdateAssetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	var body UpdateAssetControllerBody
	if response := helpers.DecodeBody(r, &body); response != nil {
		return response
	}

	existing, err := c.FindAssetByIdRepository.Find(ctx, body.Id)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the asset", err)
	}
	if existing == nil {
		return helpers.NotFoundResponse("asset")
	}

	providerId := helpers.OptionalId(body.ProviderId)
	if response := helpers.CheckReferences(ctx, c.ReferenceExistsRepository, existing.WorkspaceId,
		helpers.Ref{Field: "providerId", Collection: models.PartnerCollection, Id: providerId},
	); response != nil {
		return response
	}

	asset, err := c.UpdateAssetRepository.Update(ctx, &models.Asset{
		Id:          existing.Id,
		WorkspaceId: existing.WorkspaceId,
		Name:        body.Name,
		Code:        body.Code,
		Symbol:      body.Symbol,
		Notes:       body.Notes,
		ProviderId:  providerId,
	})
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when updating the asset", err)
	}
	if asset == nil {
		return helpers.NotFoundResponse("asset")
	}

	return helpers.CreateResponse(asset, http.StatusOK)
}
