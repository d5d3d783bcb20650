package booked_amount

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateBookedAmountController struct {
	UpdateBookedAmountRepository   usecase.UpdateBookedAmountRepository
	FindBookedAmountByIdRepository usecase.FindBookedAmountByIdRepository
	FindTransactionByIdRepository  usecase.FindTransactionByIdRepository
	ReferenceExistsRepository      usecase.ReferenceExistsRepository
	InvalidateExportsRepository    usecase.InvalidateExportsRepository
}

func NewUpdateBookedAmountController(
	updateBookedAmountRepository usecase.UpdateBookedAmountRepository,
	findBookedAmountByIdRepository usecase.FindBookedAmountByIdRepository,
	findTransactionByIdRepository usecase.FindTransactionByIdRepository,
	referenceExistsRepository usecase.ReferenceExistsRepository,
	invalidateExportsRepository usecase.InvalidateExportsRepository,
) *UpdateBookedAmountController {
	return &UpdateBookedAmountController{
		UpdateBookedAmountRepository:   updateBookedAmountRepository,
		FindBookedAmountByIdRepository: findBookedAmountByIdRepository,
		FindTransactionByIdRepository:  findTransactionByIdRepository,
		ReferenceExistsRepository:      referenceExistsRepository,
		InvalidateExportsRepository:    invalidateExportsRepository,
	}
}

type UpdateBookedAmountControllerBody struct {
	Id primitive.ObjectID `json:"id" validate:"required"`
	BookedAmountControllerBody
}

func (c *UpdateBookedAmountController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	var body UpdateBookedAmountControllerBody
	if response := helpers.DecodeBody(r, &body); response != nil {
		return response
	}

	existing, err := c.FindBookedAmountByIdRepository.Find(ctx, body.Id)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the booked amount", err)
	}
	if existing == nil {
		return helpers.NotFoundResponse("booked amount")
	}

	transaction, err := c.FindTransactionByIdRepository.Find(ctx, existing.TransactionId)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the transaction", err)
	}
	if transaction == nil {
		return helpers.NotFoundResponse("transaction")
	}

	booked := &models.BookedAmount{
		Id:            existing.Id,
		TransactionId: existing.TransactionId,
		CreatedAt:     existing.CreatedAt,
	}
	if response := body.apply(booked); response != nil {
		return response
	}
	if response := helpers.CheckReferences(ctx, c.ReferenceExistsRepository, transaction.WorkspaceId, references(booked)...); response != nil {
		return response
	}

	booked, err = c.UpdateBookedAmountRepository.Update(ctx, booked)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when updating the booked amount", err)
	}
	if booked == nil {
		return helpers.NotFoundResponse("booked amount")
	}
	helpers.InvalidateExports(ctx, c.InvalidateExportsRepository, transaction.WorkspaceId)

	return helpers.CreateResponse(booked, http.StatusOK)
}
