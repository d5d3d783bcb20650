package auth

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
	"github.com/familyledger/finance-backend/internal/utils"
)

type LoginController struct {
	FindUserByNameRepository usecase.FindUserByNameRepository
	Session                  *helpers.SessionCookie
}

func NewLoginController(findUserByNameRepository usecase.FindUserByNameRepository, session *helpers.SessionCookie) *LoginController {
	return &LoginController{
		FindUserByNameRepository: findUserByNameRepository,
		Session:                  session,
	}
}

type LoginControllerBody struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Handle answers the same error for unknown users and wrong passwords.
func (c *LoginController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body LoginControllerBody
	if response := helpers.DecodeBody(r, &body); response != nil {
		return response
	}

	user, err := c.FindUserByNameRepository.FindByName(r.Req.Context(), body.Name)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the user", err)
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, body.Password) {
		return helpers.CreateErrorResponse(http.StatusUnauthorized, helpers.KeyLoginInvalid, "invalid name or password")
	}

	identity := helpers.NewIdentity(user)
	response := helpers.CreateResponse(identity, http.StatusOK)
	if err := c.Session.Set(response, identity); err != nil {
		return helpers.InternalErrorResponse("an error occurred when creating the session", err)
	}

	return response
}
