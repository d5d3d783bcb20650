package asset

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

type GetAssetsController struct {
	FindAssetsByWorkspaceIdRepository usecase.FindAssetsByWorkspaceIdRepository
}

func NewGetAssetsController(findAssets usecase.FindAssetsByWorkspaceIdRepository) *GetAssetsController {
	return &GetAssetsController{FindAssetsByWorkspaceIdRepository: findAssets}
}

func (c *GetAssetsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	workspaceId, response := helpers.GetPathId(r, "workspace_id")
	if response != nil {
		return response
	}

	pagination, response := helpers.GetPagination(r.UrlParams, models.AssetSortFields)
	if response != nil {
		return response
	}

	assets, err := c.FindAssetsByWorkspaceIdRepository.Find(r.Req.Context(), workspaceId, pagination)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding assets", err)
	}

	return helpers.CreateResponse(assets, http.StatusOK)
}
