package recurring_payment

import (
	"net/http"
	"time"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateRecurringPaymentController changes the payment only. Already
// generated transactions stay as they are until payments are updated.
type UpdateRecurringPaymentController struct {
	UpdateRecurringPaymentRepository   usecase.UpdateRecurringPaymentRepository
	FindRecurringPaymentByIdRepository usecase.FindRecurringPaymentByIdRepository
	ReferenceExistsRepository          usecase.ReferenceExistsRepository
	Now                                func() time.Time
}

func NewUpdateRecurringPaymentController(
	updateRecurringPaymentRepository usecase.UpdateRecurringPaymentRepository,
	findRecurringPaymentByIdRepository usecase.FindRecurringPaymentByIdRepository,
	referenceExistsRepository usecase.ReferenceExistsRepository,
	now func() time.Time,
) *UpdateRecurringPaymentController {
	return &UpdateRecurringPaymentController{
		UpdateRecurringPaymentRepository:   updateRecurringPaymentRepository,
		FindRecurringPaymentByIdRepository: findRecurringPaymentByIdRepository,
		ReferenceExistsRepository:          referenceExistsRepository,
		Now:                                now,
	}
}

type UpdateRecurringPaymentControllerBody struct {
	Id primitive.ObjectID `json:"id" validate:"required"`
	RecurringPaymentControllerBody
}

func (c *UpdateRecurringPaymentController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	var body UpdateRecurringPaymentControllerBody
	if response := helpers.DecodeBody(r, &body); response != nil {
		return response
	}

	existing, err := c.FindRecurringPaymentByIdRepository.Find(ctx, body.Id)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the recurring payment", err)
	}
	if existing == nil {
		return helpers.NotFoundResponse("recurring payment")
	}

	payment := &models.RecurringPayment{
		Id:                  existing.Id,
		WorkspaceId:         existing.WorkspaceId,
		LastTransactionDate: existing.LastTransactionDate,
		CreatedAt:           existing.CreatedAt,
	}
	if response := body.apply(payment); response != nil {
		return response
	}
	if response := checkReferences(r, c.ReferenceExistsRepository, payment); response != nil {
		return response
	}

	payment, err = c.UpdateRecurringPaymentRepository.Update(ctx, payment)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when updating the recurring payment", err)
	}
	if payment == nil {
		return helpers.NotFoundResponse("recurring payment")
	}

	payment.NextPaymentDate = payment.ComputeNextPaymentDate(c.Now())
	return helpers.CreateResponse(payment, http.StatusOK)
}
