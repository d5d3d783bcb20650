package asset

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

type DeleteAssetController struct {
	DeleteAssetRepository   usecase.DeleteAssetRepository
	FindAssetByIdRepository usecase.FindAssetByIdRepository
	DependentsRepository    usecase.DependentsRepository
}

func NewDeleteAssetController(
	deleteAssetRepository usecase.DeleteAssetRepository,
	findAssetByIdRepository usecase.FindAssetByIdRepository,
	dependentsRepository usecase.DependentsRepository,
) *DeleteAssetController {
	return &DeleteAssetController{
		DeleteAssetRepository:   deleteAssetRepository,
		FindAssetByIdRepository: findAssetByIdRepository,
		DependentsRepository:    dependentsRepository,
	}
}

func (c *DeleteAssetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	assetId, response := helpers.GetPathId(r, "id")
	if response != nil {
		return response
	}

	asset, err := c.FindAssetByIdRepository.Find(ctx, assetId)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the asset", err)
	}
	if asset == nil {
		return helpers.NotFoundResponse("asset")
	}

	hasDependents, err := c.DependentsRepository.HasDependents(ctx, assetId)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when checking asset dependents", err)
	}
	if hasDependents {
		return helpers.DependentsResponse("asset")
	}

	if err := c.DeleteAssetRepository.Delete(ctx, assetId); err != nil {
		return helpers.InternalErrorResponse("an error occurred when deleting the asset", err)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
