package recurring_payment

import (
	"net/http"
	"strconv"
	"time"

	"github.com/familyledger/finance-backend/internal/domain/recurring"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

type UpdatePaymentsController struct {
	FindRecurringPaymentByIdRepository usecase.FindRecurringPaymentByIdRepository
	Payments                           *recurring.Service
	Now                                func() time.Time
}

func NewUpdatePaymentsController(
	findRecurringPaymentByIdRepository usecase.FindRecurringPaymentByIdRepository,
	payments *recurring.Service,
	now func() time.Time,
) *UpdatePaymentsController {
	return &UpdatePaymentsController{
		FindRecurringPaymentByIdRepository: findRecurringPaymentByIdRepository,
		Payments:                           payments,
		Now:                                now,
	}
}

// Handle regenerates the pending payments. overwriteModified=true also
// replaces the payments users changed by hand.
func (c *UpdatePaymentsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	paymentId, response := helpers.GetPathId(r, "id")
	if response != nil {
		return response
	}

	force := false
	if value := r.UrlParams.Get("overwriteModified"); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return helpers.CreateErrorResponse(http.StatusBadRequest, helpers.KeyValidation, "overwriteModified must be a boolean")
		}
		force = parsed
	}

	payment, err := c.FindRecurringPaymentByIdRepository.Find(ctx, paymentId)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the recurring payment", err)
	}
	if payment == nil {
		return helpers.NotFoundResponse("recurring payment")
	}

	update, err := c.Payments.UpdatePayments(ctx, payment, c.Now(), force)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when updating the payments", err)
	}

	return helpers.CreateResponse(update, http.StatusOK)
}
