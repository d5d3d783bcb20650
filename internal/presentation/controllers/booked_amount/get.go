package booked_amount

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

type GetBookedAmountsController struct {
	FindBookedAmountsByTransactionIdRepository usecase.FindBookedAmountsByTransactionIdRepository
}

func NewGetBookedAmountsController(findBookedAmounts usecase.FindBookedAmountsByTransactionIdRepository) *GetBookedAmountsController {
	return &GetBookedAmountsController{FindBookedAmountsByTransactionIdRepository: findBookedAmounts}
}

func (c *GetBookedAmountsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	transactionId, response := helpers.GetPathId(r, "transaction_id")
	if response != nil {
		return response
	}

	pagination, response := helpers.GetPagination(r.UrlParams, models.BookedAmountSortFields)
	if response != nil {
		return response
	}

	bookedAmounts, err := c.FindBookedAmountsByTransactionIdRepository.Find(r.Req.Context(), transactionId, pagination)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding booked amounts", err)
	}

	return helpers.CreateResponse(bookedAmounts, http.StatusOK)
}
