package transaction

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateTransactionController struct {
	CreateTransactionRepository usecase.CreateTransactionRepository
	FindWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository
	ReferenceExistsRepository   usecase.ReferenceExistsRepository
	InvalidateExportsRepository usecase.InvalidateExportsRepository
}

func NewCreateTransactionController(
	createTransactionRepository usecase.CreateTransactionRepository,
	findWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository,
	referenceExistsRepository usecase.ReferenceExistsRepository,
	invalidateExportsRepository usecase.InvalidateExportsRepository,
) *CreateTransactionController {
	return &CreateTransactionController{
		CreateTransactionRepository: createTransactionRepository,
		FindWorkspaceByIdRepository: findWorkspaceByIdRepository,
		ReferenceExistsRepository:   referenceExistsRepository,
		InvalidateExportsRepository: invalidateExportsRepository,
	}
}

type CreateTransactionControllerBody struct {
	WorkspaceId primitive.ObjectID `json:"workspaceId" validate:"required"`
	TransactionControllerBody
}

func (c *CreateTransactionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	var body CreateTransactionControllerBody
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

	tx := &models.Transaction{WorkspaceId: workspace.Id}
	body.apply(tx)
	if response := checkReferences(r, c.ReferenceExistsRepository, tx); response != nil {
		return response
	}

	tx, err = c.CreateTransactionRepository.Create(ctx, tx)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when creating the transaction", err)
	}
	helpers.InvalidateExports(ctx, c.InvalidateExportsRepository, tx.WorkspaceId)

	return helpers.CreateResponse(tx, http.StatusCreated)
}
