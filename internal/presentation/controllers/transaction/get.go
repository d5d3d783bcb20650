package transaction

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

type GetTransactionsController struct {
	FindTransactionsByWorkspaceIdRepository usecase.FindTransactionsByWorkspaceIdRepository
}

func NewGetTransactionsController(findTransactions usecase.FindTransactionsByWorkspaceIdRepository) *GetTransactionsController {
	return &GetTransactionsController{FindTransactionsByWorkspaceIdRepository: findTransactions}
}

func (c *GetTransactionsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	workspaceId, response := helpers.GetPathId(r, "workspace_id")
	if response != nil {
		return response
	}

	pagination, response := helpers.GetPagination(r.UrlParams, models.TransactionSortFields)
	if response != nil {
		return response
	}

	transactions, err := c.FindTransactionsByWorkspaceIdRepository.Find(r.Req.Context(), workspaceId, pagination)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding transactions", err)
	}

	return helpers.CreateResponse(transactions, http.StatusOK)
}
