package factory

import (
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/user_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/workspace_repository"
	"github.com/familyledger/finance-backend/internal/presentation/controllers/setup"
)

func MakeGetStageController(app *App) *setup.GetStageController {
	return setup.NewGetStageController(app.Stages)
}

func MakeSetupUserController(app *App) *setup.CreateUserController {
	createUserRepository := user_repository.NewCreateUserRepository(app.Db)
	return setup.NewCreateUserController(createUserRepository, app.Stages, app.Session)
}

func MakeSetupWorkspaceController(app *App) *setup.CreateWorkspaceController {
	createWorkspaceRepository := workspace_repository.NewCreateWorkspaceRepository(app.Db)
	return setup.NewCreateWorkspaceController(createWorkspaceRepository, app.Stages)
}
