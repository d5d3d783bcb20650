package setup

import (
	"net/http"

	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

type GetStageController struct {
	Stages *helpers.SetupStageResolver
}

func NewGetStageController(stages *helpers.SetupStageResolver) *GetStageController {
	return &GetStageController{Stages: stages}
}

func (c *GetStageController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	stage, err := c.Stages.Stage(r.Req.Context())
	if err != nil {
		return helpers.InternalErrorResponse("an error occurred when resolving the setup stage", err)
	}

	return helpers.CreateResponse(stage, http.StatusOK)
}

func stageCompletedResponse() *presentationProtocols.HttpResponse {
	return helpers.CreateErrorResponse(http.StatusForbidden, helpers.KeySetupCompleted, "this setup step has already been completed")
}
