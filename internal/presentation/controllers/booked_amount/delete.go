package booked_amount

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

type DeleteBookedAmountController struct {
	DeleteBookedAmountRepository   usecase.DeleteBookedAmountRepository
	FindBookedAmountByIdRepository usecase.FindBookedAmountByIdRepository
	FindTransactionByIdRepository  usecase.FindTransactionByIdRepository
	InvalidateExportsRepository    usecase.InvalidateExportsRepository
}

func NewDeleteBookedAmountController(
	deleteBookedAmountRepository usecase.DeleteBookedAmountRepository,
	findBookedAmountByIdRepository usecase.FindBookedAmountByIdRepository,
	findTransactionByIdRepository usecase.FindTransactionByIdRepository,
	invalidateExportsRepository usecase.InvalidateExportsRepository,
) *DeleteBookedAmountController {
	return &DeleteBookedAmountController{
		DeleteBookedAmountRepository:   deleteBookedAmountRepository,
		FindBookedAmountByIdRepository: findBookedAmountByIdRepository,
		FindTransactionByIdRepository:  findTransactionByIdRepository,
		InvalidateExportsRepository:    invalidateExportsRepository,
	}
}

func (c *DeleteBookedAmountController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	bookedAmountId, response := helpers.GetPathId(r, "id")
	if response != nil {
		return response
	}

	booked, err := c.FindBookedAmountByIdRepository.Find(ctx, bookedAmountId)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the booked amount", err)
	}
	if booked == nil {
		return helpers.NotFoundResponse("booked amount")
	}

	transaction, err := c.FindTransactionByIdRepository.Find(ctx, booked.TransactionId)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the transaction", err)
	}

	if err := c.DeleteBookedAmountRepository.Delete(ctx, bookedAmountId); err != nil {
		return helpers.InternalErrorResponse("an error occurred when deleting the booked amount", err)
	}
	if transaction != nil {
		helpers.InvalidateExports(ctx, c.InvalidateExportsRepository, transaction.WorkspaceId)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
