package transaction

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

type DeleteTransactionController struct {
	DeleteTransactionRepository   usecase.DeleteTransactionRepository
	FindTransactionByIdRepository usecase.FindTransactionByIdRepository
	DependentsRepository          usecase.DependentsRepository
	InvalidateExportsRepository   usecase.InvalidateExportsRepository
}

func NewDeleteTransactionController(
	deleteTransactionRepository usecase.DeleteTransactionRepository,
	findTransactionByIdRepository usecase.FindTransactionByIdRepository,
	dependentsRepository usecase.DependentsRepository,
	invalidateExportsRepository usecase.InvalidateExportsRepository,
) *DeleteTransactionController {
	return &DeleteTransactionController{
		DeleteTransactionRepository:   deleteTransactionRepository,
		FindTransactionByIdRepository: findTransactionByIdRepository,
		DependentsRepository:          dependentsRepository,
		InvalidateExportsRepository:   invalidateExportsRepository,
	}
}

func (c *DeleteTransactionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	transactionId, response := helpers.GetPathId(r, "id")
	if response != nil {
		return response
	}

	transaction, err := c.FindTransactionByIdRepository.Find(ctx, transactionId)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the transaction", err)
	}
	if transaction == nil {
		return helpers.NotFoundResponse("transaction")
	}

	hasDependents, err := c.DependentsRepository.HasDependents(ctx, transactionId)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when checking transaction dependents", err)
	}
	if hasDependents {
		return helpers.DependentsResponse("transaction")
	}

	if err := c.DeleteTransactionRepository.Delete(ctx, transactionId); err != nil {
		return helpers.InternalErrorResponse("an error occurred when deleting the transaction", err)
	}
	helpers.InvalidateExports(ctx, c.InvalidateExportsRepository, transaction.WorkspaceId)

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
