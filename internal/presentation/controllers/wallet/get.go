package wallet

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

type GetWalletsController struct {
	FindWalletsByWorkspaceIdRepository usecase.FindWalletsByWorkspaceIdRepository
}

func NewGetWalletsController(findWallets usecase.FindWalletsByWorkspaceIdRepository) *GetWalletsController {
	return &GetWalletsController{FindWalletsByWorkspaceIdRepository: findWallets}
}

func (c *GetWalletsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	workspaceId, response := helpers.GetPathId(r, "workspace_id")
	if response != nil {
		return response
	}

	pagination, response := helpers.GetPagination(r.UrlParams, models.WalletSortFields)
	if response != nil {
		return response
	}

	wallets, err := c.FindWalletsByWorkspaceIdRepository.Find(r.Req.Context(), workspaceId, pagination)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding wallets", err)
	}

	return helpers.CreateResponse(wallets, http.StatusOK)
}
