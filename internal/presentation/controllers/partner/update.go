package partner

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdatePartnerController struct {
	UpdatePartnerRepository   usecase.UpdatePartnerRepository
	FindPartnerByIdRepository usecase.FindPartnerByIdRepository
}

func NewUpdatePartnerController(
	updatePartnerRepository usecase.UpdatePartnerRepository,
	findPartnerByIdRepository usecase.FindPartnerByIdRepository,
) *UpdatePartnerController {
	return &UpdatePartnerController{
		UpdatePartnerRepository:   updatePartnerRepository,
		FindPartnerByIdRepository: findPartnerByIdRepository,
	}
}

type UpdatePartnerControllerBody struct {
	Id    primitive.ObjectID `json:"id" validate:"required"`
	Name  string             `json:"name" validate:"required,min=1,max=255"`
	Type  models.PartnerType `json:"type" validate:"required,oneof=BANK COMPANY PERSON GOVERNMENTAL EXCHANGE OTHER"`
	Notes string             `json:"notes" validate:"max=1024"`
}

func (c *UpdatePartnerController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	var body UpdatePartnerControllerBody
	if response := helpers.DecodeBody(r, &body); response != nil {
		return response
	}

	existing, err := c.FindPartnerByIdRepository.Find(ctx, body.Id)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the partner", err)
	}
	if existing == nil {
		return helpers.NotFoundResponse("partner")
	}

	partner, err := c.UpdatePartnerRepository.Update(ctx, &models.Partner{
		Id:          existing.Id,
		WorkspaceId: existing.WorkspaceId,
		Name:        body.Name,
		Type:        body.Type,
		Notes:       body.Notes,
	})
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when updating the partner", err)
	}
	if partner == nil {
		return helpers.NotFoundResponse("partner")
	}

	return helpers.CreateResponse(partner, http.StatusOK)
}
