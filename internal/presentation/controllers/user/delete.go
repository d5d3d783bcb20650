package user

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

type DeleteUserController struct {
	DeleteUserRepository   usecase.DeleteUserRepository
	FindUserByIdRepository usecase.FindUserByIdRepository
	CountUsersRepository   usecase.CountUsersRepository
}

func NewDeleteUserController(
	deleteUserRepository usecase.DeleteUserRepository,
	findUserByIdRepository usecase.FindUserByIdRepository,
	countUsersRepository usecase.CountUsersRepository,
) *DeleteUserController {
	return &DeleteUserController{
		DeleteUserRepository:   deleteUserRepository,
		FindUserByIdRepository: findUserByIdRepository,
		CountUsersRepository:   countUsersRepository,
	}
}

func (c *DeleteUserController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	userId, response := helpers.GetPathId(r, "id")
	if response != nil {
		return response
	}

	user, err := c.FindUserByIdRepository.Find(ctx, userId)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the user", err)
	}
	if user == nil {
		return helpers.NotFoundResponse("user")
	}

	if user.HasRole(models.RoleAdmin) {
		admins, err := c.CountUsersRepository.Count(ctx, models.RoleAdmin)
		if err != nil {
			return helpers.InternalErrorResponse("an error occurred when counting admins", err)
		}
		if admins <= 1 {
			return lastAdminResponse()
		}
	}

	if err := c.DeleteUserRepository.Delete(ctx, userId); err != nil {
		return helpers.InternalErrorResponse("an error occurred when deleting the user", err)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
