package auth

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

type LogoutController struct {
	Session *helpers.SessionCookie
}

func NewLogoutController(session *helpers.SessionCookie) *LogoutController {
	return &LogoutController{Session: session}
}

func (c *LogoutController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	response := helpers.CreateResponse(nil, http.StatusNoContent)
	c.Session.Clear(response)
	return response
}
