package recurring_payment

import (
	"net/http"
	"time"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/recurring"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateRecurringPaymentController stores the payment and the transactions
// it produces up to the payment horizon.
type CreateRecurringPaymentController struct {
	CreateRecurringPaymentRepository usecase.CreateRecurringPaymentRepository
	FindWorkspaceByIdRepository      usecase.FindWorkspaceByIdRepository
	ReferenceExistsRepository        usecase.ReferenceExistsRepository
	Payments                         *recurring.Service
	Now                              func() time.Time
}

func NewCreateRecurringPaymentController(
	createRecurringPaymentRepository usecase.CreateRecurringPaymentRepository,
	findWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository,
	referenceExistsRepository usecase.ReferenceExistsRepository,
	payments *recurring.Service,
	now func() time.Time,
) *CreateRecurringPaymentController {
	return &CreateRecurringPaymentController{
		CreateRecurringPaymentRepository: createRecurringPaymentRepository,
		FindWorkspaceByIdRepository:      findWorkspaceByIdRepository,
		ReferenceExistsRepository:        referenceExistsRepository,
		Payments:                         payments,
		Now:                              now,
	}
}

type CreateRecurringPaymentControllerBody struct {
	WorkspaceId primitive.ObjectID `json:"workspaceId" validate:"required"`
	RecurringPaymentControllerBody
}

func (c *CreateRecurringPaymentController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	var body CreateRecurringPaymentControllerBody
	if response := helpers.DecodeBody(r, &body); response != nil {
		return response
	}

	workspace, err := c.FindWorkspaceByIdRepository.Find(ctx, body.WorkspaceId)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the workspace", err)
	}
	if workspace == nil {
		return helpers.NotFoundResponse("workspace")
	}

	payment := &models.RecurringPayment{WorkspaceId: workspace.Id}
	if response := body.apply(payment); response != nil {
		return response
	}
	if response := checkReferences(r, c.ReferenceExistsRepository, payment); response != nil {
		return response
	}

	payment, err = c.CreateRecurringPaymentRepository.Create(ctx, payment)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when creating the recurring payment", err)
	}

	now := c.Now()
	if _, err := c.Payments.GeneratePayments(ctx, payment, now); err != nil {
		return helpers.InternalErrorResponse("an error occurred when generating the payments", err)
	}

	payment.NextPaymentDate = payment.ComputeNextPaymentDate(now)
	return helpers.CreateResponse(payment, http.StatusCreated)
}
