package user

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
	"github.com/familyledger/finance-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateUserController struct {
	UpdateUserRepository     usecase.UpdateUserRepository
	FindUserByIdRepository   usecase.FindUserByIdRepository
	FindUserByNameRepository usecase.FindUserByNameRepository
	CountUsersRepository     usecase.CountUsersRepository
}

func NewUpdateUserController(
	updateUserRepository usecase.UpdateUserRepository,
	findUserByIdRepository usecase.FindUserByIdRepository,
	findUserByNameRepository usecase.FindUserByNameRepository,
	countUsersRepository usecase.CountUsersRepository,
) *UpdateUserController {
	return &UpdateUserController{
		UpdateUserRepository:     updateUserRepository,
		FindUserByIdRepository:   findUserByIdRepository,
		FindUserByNameRepository: findUserByNameRepository,
		CountUsersRepository:     countUsersRepository,
	}
}

// UpdateUserControllerBody keeps the stored password when Password is empty.
type UpdateUserControllerBody struct {
	Id       primitive.ObjectID `json:"id" validate:"required"`
	Name     string             `json:"name" validate:"required,min=3,max=255"`
	Password string             `json:"password" validate:"omitempty,min=8,max=72"`
	Roles    []string           `json:"roles" validate:"required,min=1,dive,oneof=admin user"`
}

func (c *UpdateUserController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	var body UpdateUserControllerBody
	if response := helpers.DecodeBody(r, &body); response != nil {
		return response
	}

	existing, err := c.FindUserByIdRepository.Find(ctx, body.Id)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the user", err)
	}
	if existing == nil {
		return helpers.NotFoundResponse("user")
	}

	if body.Name != existing.Name {
		other, err := c.FindUserByNameRepository.FindByName(ctx, body.Name)
		if err != nil {
			return helpers.InternalErrorResponse("an error occurred when finding the user", err)
		}
		if other != nil {
			return nameTakenResponse(body.Name)
		}
	}

	user := &models.User{
		Id:           existing.Id,
		Name:         body.Name,
		PasswordHash: existing.PasswordHash,
		Roles:        body.Roles,
		CreatedAt:    existing.CreatedAt,
	}

	if existing.HasRole(models.RoleAdmin) && !user.HasRole(models.RoleAdmin) {
		admins, err := c.CountUsersRepository.Count(ctx, models.RoleAdmin)
		if err != nil {
			return helpers.InternalErrorResponse("an error occurred when counting admins", err)
		}
		if admins <= 1 {
			return lastAdminResponse()
		}
	}

	if body.Password != "" {
		user.PasswordHash, err = utils.HashPassword(body.Password)
		if err != nil {
			return helpers.InternalErrorResponse("an error occurred when hashing the password", err)
		}
	}

	user, err = c.UpdateUserRepository.Update(ctx, user)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when updating the user", err)
	}
	if user == nil {
		return helpers.NotFoundResponse("user")
	}

	return helpers.CreateResponse(user, http.StatusOK)
}
