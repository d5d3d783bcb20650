package recurring_payment

import (
	"net/http"
	"time"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

type GetRecurringPaymentsController struct {
	FindRecurringPaymentsByWorkspaceIdRepository usecase.FindRecurringPaymentsByWorkspaceIdRepository
	Now                                          func() time.Time
}

func NewGetRecurringPaymentsController(
	findRecurringPayments usecase.FindRecurringPaymentsByWorkspaceIdRepository,
	now func() time.Time,
) *GetRecurringPaymentsController {
	return &GetRecurringPaymentsController{
		FindRecurringPaymentsByWorkspaceIdRepository: findRecurringPayments,
		Now: now,
	}
}

func (c *GetRecurringPaymentsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	workspaceId, response := helpers.GetPathId(r, "workspace_id")
	if response != nil {
		return response
	}

	pagination, response := helpers.GetPagination(r.UrlParams, models.RecurringPaymentSortFields)
	if response != nil {
		return response
	}

	payments, err := c.FindRecurringPaymentsByWorkspaceIdRepository.Find(r.Req.Context(), workspaceId, pagination)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding recurring payments", err)
	}

	now := c.Now()
	for i := range payments.Data {
		payments.Data[i].NextPaymentDate = payments.Data[i].ComputeNextPaymentDate(now)
	}

	return helpers.CreateResponse(payments, http.StatusOK)
}
