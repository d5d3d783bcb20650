package wallet

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

type DeleteWalletController struct {
	DeleteWalletRepository   usecase.DeleteWalletRepository
	FindWalletByIdRepository usecase.FindWalletByIdRepository
	DependentsRepository     usecase.DependentsRepository
}

func NewDeleteWalletController(
	deleteWalletRepository usecase.DeleteWalletRepository,
	findWalletByIdRepository usecase.FindWalletByIdRepository,
	dependentsRepository usecase.DependentsRepository,
) *DeleteWalletController {
	return &DeleteWalletController{
		DeleteWalletRepository:   deleteWalletRepository,
		FindWalletByIdRepository: findWalletByIdRepository,
		DependentsRepository:     dependentsRepository,
	}
}

func (c *DeleteWalletController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	walletId, response := helpers.GetPathId(r, "id")
	if response != nil {
		return response
	}

	wallet, err := c.FindWalletByIdRepository.Find(ctx, walletId)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the wallet", err)
	}
	if wallet == nil {
		return helpers.NotFoundResponse("wallet")
	}

	hasDependents, err := c.DependentsRepository.HasDependents(ctx, walletId)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when checking wallet dependents", err)
	}
	if hasDependents {
		return helpers.DependentsResponse("wallet")
	}

	if err := c.DeleteWalletRepository.Delete(ctx, walletId); err != nil {
		return helpers.InternalErrorResponse("an error occurred when deleting the wallet", err)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
