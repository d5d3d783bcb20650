package user

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

type GetUsersController struct {
	FindUsersRepository usecase.FindUsersRepository
}

func NewGetUsersController(findUsersRepository usecase.FindUsersRepository) *GetUsersController {
	return &GetUsersController{FindUsersRepository: findUsersRepository}
}

func (c *GetUsersController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	pagination, response := helpers.GetPagination(r.UrlParams, models.UserSortFields)
	if response != nil {
		return response
	}

	users, err := c.FindUsersRepository.Find(r.Req.Context(), pagination)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding users", err)
	}

	return helpers.CreateResponse(users, http.StatusOK)
}
