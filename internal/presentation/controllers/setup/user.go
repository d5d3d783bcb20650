package setup

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
	"github.com/familyledger/finance-backend/internal/utils"
)

// CreateUserController creates the first user, an admin, and logs it in.
type CreateUserController struct {
	CreateUserRepository usecase.CreateUserRepository
	Stages               *helpers.SetupStageResolver
	Session              *helpers.SessionCookie
}

func NewCreateUserController(
	createUserRepository usecase.CreateUserRepository,
	stages *helpers.SetupStageResolver,
	session *helpers.SessionCookie,
) *CreateUserController {
	return &CreateUserController{
		CreateUserRepository: createUserRepository,
		Stages:               stages,
		Session:              session,
	}
}

type CreateUserControllerBody struct {
	Name     string `json:"name" validate:"required,min=3,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (c *CreateUserController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	stage, err := c.Stages.Stage(ctx)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when resolving the setup stage", err)
	}
	if stage != models.SetupStageCreateUser {
		return stageCompletedResponse()
	}

	var body CreateUserControllerBody
	if response := helpers.DecodeBody(r, &body); response != nil {
		return response
	}

	hash, err := utils.HashPassword(body.Password)
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when hashing the password", err)
	}

	user, err := c.CreateUserRepository.Create(ctx, &models.User{
		Name:         body.Name,
		PasswordHash: hash,
		Roles:        []string{models.RoleAdmin, models.RoleUser},
	})
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when creating the user", err)
	}

	response := helpers.CreateResponse(user, http.StatusCreated)
	if err := c.Session.Set(response, helpers.NewIdentity(user)); err != nil {
		return helpers.InternalErrorResponse("an error occurred when creating the session", err)
	}

	return response
}
