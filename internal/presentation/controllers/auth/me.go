package auth

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

type MeController struct{}

func NewMeController() *MeController {
	return &MeController{}
}

func (c *MeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	identity := helpers.IdentityFromContext(r.Req.Context())
	if identity == nil {
		return helpers.NotFoundResponse("session")
	}

	return helpers.CreateResponse(identity, http.StatusOK)
}
