package transaction

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateTransactionController struct {
	UpdateTransactionRepository   usecase.UpdateTransactionRepository
	FindTransactionByIdRepository usecase.FindTransactionByIdRepository
	ReferenceExistsRepository     usecase.ReferenceExistsRepository
	InvalidateExportsRepository   usecase.InvalidateExportsRepository
}

func NewUpdateTransactionController(
	updateTransactionRepository usecase.UpdateTransactionRepository,
	findTransactionByIdRepository usecase.FindTransactionByIdRepository,
	referenceExistsRepository usecase.ReferenceExistsRepository,
	invalidateExportsRepository usecase.InvalidateExportsRepository,
) *UpdateTransactionController {
	return &UpdateTransactionController{
		UpdateTransactionRepository:   updateTransactionRepository,
		FindTransactionByIdRepository: findTransactionByIdRepository,
		ReferenceExistsRepository:     referenceExistsRepository,
		InvalidateExportsRepository:   invalidateExportsRepository,
	}
}

type UpdateTransactionControllerBody struct {
	Id primitive.ObjectID `json:"id" validate:"required"`
	TransactionControllerBody
}

// Handle marks a generated transaction as user modified once its values
// differ from what the recurring payment produced, so that regenerating the
// payments keeps it.
func (c *UpdateTransactionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	var body UpdateTransactionControllerBody
	if response := helpers.DecodeBody(r, &body); response != nil {
		return response
	}

	existing, err := c.FindTransactionByIdRepository.Find(ctx, body.Id)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the transaction", err)
	}
	if existing == nil {
		return helpers.NotFoundResponse("transaction")
	}

	tx := &models.Transaction{
		Id:           existing.Id,
		WorkspaceId:  existing.WorkspaceId,
		SourceId:     existing.SourceId,
		UserModified: existing.UserModified,
		CreatedAt:    existing.CreatedAt,
	}
	body.apply(tx)
	if tx.InternalRefId != nil && *tx.InternalRefId == tx.Id {
		return helpers.CreateErrorResponse(http.StatusUnprocessableEntity, helpers.KeyValidation,
			"internalRefId cannot reference the transaction itself")
	}
	if response := checkReferences(r, c.ReferenceExistsRepository, tx); response != nil {
		return response
	}

	if existing.IsGenerated() && !existing.SameValues(tx) {
		tx.UserModified = true
	}

	tx, err = c.UpdateTransactionRepository.Update(ctx, tx)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when updating the transaction", err)
	}
	if tx == nil {
		return helpers.NotFoundResponse("transaction")
	}
	helpers.InvalidateExports(ctx, c.InvalidateExportsRepository, tx.WorkspaceId)

	return helpers.CreateResponse(tx, http.StatusOK)
}
