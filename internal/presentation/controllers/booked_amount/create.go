package booked_amount

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

type CreateBookedAmountController struct {
	CreateBookedAmountRepository  usecase.CreateBookedAmountRepository
	FindTransactionByIdRepository usecase.FindTransactionByIdRepository
	ReferenceExistsRepository     usecase.ReferenceExistsRepository
	InvalidateExportsRepository   usecase.InvalidateExportsRepository
}

func NewCreateBookedAmountController(
	createBookedAmountRepository usecase.CreateBookedAmountRepository,
	findTransactionByIdRepository usecase.FindTransactionByIdRepository,
	referenceExistsRepository usecase.ReferenceExistsRepository,
	invalidateExportsRepository usecase.InvalidateExportsRepository,
) *CreateBookedAmountController {
	return &CreateBookedAmountController{
		CreateBookedAmountRepository:  createBookedAmountRepository,
		FindTransactionByIdRepository: findTransactionByIdRepository,
		ReferenceExistsRepository:     referenceExistsRepository,
		InvalidateExportsRepository:   invalidateExportsRepository,
	}
}

func (c *CreateBookedAmountController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	transactionId, response := helpers.GetPathId(r, "transaction_id")
	if response != nil {
		return response
	}

	var body BookedAmountControllerBody
	if response := helpers.DecodeBody(r, &body); response != nil {
		return response
	}

	transaction, err := c.FindTransactionByIdRepository.Find(ctx, transactionId)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the transaction", err)
	}
	if transaction == nil {
		return helpers.NotFoundResponse("transaction")
	}

	booked := &models.BookedAmount{TransactionId: transaction.Id}
	if response := body.apply(booked); response != nil {
		return response
	}
	if response := helpers.CheckReferences(ctx, c.ReferenceExistsRepository, transaction.WorkspaceId, references(booked)...); response != nil {
		return response
	}

	booked, err = c.CreateBookedAmountRepository.Create(ctx, booked)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when booking the amount", err)
	}
	helpers.InvalidateExports(ctx, c.InvalidateExportsRepository, transaction.WorkspaceId)

	return helpers.CreateResponse(booked, http.StatusCreated)
}
