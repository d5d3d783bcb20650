package user

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
	"github.com/familyledger/finance-backend/internal/utils"
)

type CreateUserController struct {
	CreateUserRepository     usecase.CreateUserRepository
	FindUserByNameRepository usecase.FindUserByNameRepository
}

func NewCreateUserController(
	createUserRepository usecase.CreateUserRepository,
	findUserByNameRepository usecase.FindUserByNameRepository,
) *CreateUserController {
	return &CreateUserController{
		CreateUserRepository:     createUserRepository,
		FindUserByNameRepository: findUserByNameRepository,
	}
}

type CreateUserControllerBody struct {
	Name     string   `json:"name" validate:"required,min=3,max=255"`
	Password string   `json:"password" validate:"required,min=8,max=72"`
	Roles    []string `json:"roles" validate:"required,min=1,dive,oneof=admin user"`
}

func (c *CreateUserController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	var body CreateUserControllerBody
	if response := helpers.DecodeBody(r, &body); response != nil {
		return response
	}

	existing, err := c.FindUserByNameRepository.FindByName(ctx, body.Name)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when finding the user", err)
	}
	if existing != nil {
		return nameTakenResponse(body.Name)
	}

	hash, err := utils.HashPassword(body.Password)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when hashing the password", err)
	}

	user, err := c.CreateUserRepository.Create(ctx, &models.User{
		Name:         body.Name,
		PasswordHash: hash,
		Roles:        body.Roles,
	})
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when creating the user", err)
	}

	return helpers.CreateResponse(user, http.StatusCreated)
}

func nameTakenResponse(name string) *presentationProtocols.HttpResponse {
	return helpers.CreateErrorResponse(http.StatusConflict, helpers.KeyNameTaken, "user "+name+" already exists")
}

func lastAdminResponse() *presentationProtocols.HttpResponse {
	return helpers.CreateErrorResponse(http.StatusConflict, helpers.KeyDeleteLastAdmin, "the last admin can not be removed")
}
