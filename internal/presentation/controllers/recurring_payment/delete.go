package recurring_payment

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

// DeleteRecurringPaymentController removes the open payments nobody booked
// yet and keeps the others as plain transactions.
type DeleteRecurringPaymentController struct {
	DeleteRecurringPaymentRepository       usecase.DeleteRecurringPaymentRepository
	FindRecurringPaymentByIdRepository     usecase.FindRecurringPaymentByIdRepository
	ReleaseGeneratedTransactionsRepository usecase.ReleaseGeneratedTransactionsRepository
}

func NewDeleteRecurringPaymentController(
	deleteRecurringPaymentRepository usecase.DeleteRecurringPaymentRepository,
	findRecurringPaymentByIdRepository usecase.FindRecurringPaymentByIdRepository,
	releaseGeneratedTransactionsRepository usecase.ReleaseGeneratedTransactionsRepository,
) *DeleteRecurringPaymentController {
	return &DeleteRecurringPaymentController{
		DeleteRecurringPaymentRepository:       deleteRecurringPaymentRepository,
		FindRecurringPaymentByIdRepository:     findRecurringPaymentByIdRepository,
		ReleaseGeneratedTransactionsRepository: releaseGeneratedTransactionsRepository,
	}
}

func (c *DeleteRecurringPaymentController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	paymentId, response := helpers.GetPathId(r, "id")
	if response != nil {
		return response
	}

	payment, err := c.FindRecurringPaymentByIdRepository.Find(ctx, paymentId)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the recurring payment", err)
	}
	if payment == nil {
		return helpers.NotFoundResponse("recurring payment")
	}

	if err := c.ReleaseGeneratedTransactionsRepository.Release(ctx, paymentId); err != nil {
		return helpers.InternalErrorResponse("an error occurred when releasing the generated transactions", err)
	}

	if err := c.DeleteRecurringPaymentRepository.Delete(ctx, paymentId); err != nil {
		return helpers.InternalErrorResponse("an error occurred when deleting the recurring payment", err)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
