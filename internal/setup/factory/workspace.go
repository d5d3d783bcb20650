package factory

import (
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/workspace_repository"
	"github.com/familyledger/finance-backend/internal/presentation/controllers/workspace"
)

func MakeCreateWorkspaceController(app *App) *workspace.CreateWorkspaceController {
	createWorkspaceRepository := workspace_repository.NewCreateWorkspaceRepository(app.Db)
	return workspace.NewCreateWorkspaceController(createWorkspaceRepository)
}

func MakeGetWorkspacesController(app *App) *workspace.GetWorkspacesController {
	findWorkspacesRepository := workspace_repository.NewFindWorkspacesRepository(app.Db)
	return workspace.NewGetWorkspacesController(findWorkspacesRepository)
}

func MakeUpdateWorkspaceController(app *App) *workspace.UpdateWorkspaceController {
	updateWorkspaceRepository := workspace_repository.NewUpdateWorkspaceRepository(app.Db)
	return workspace.NewUpdateWorkspaceController(updateWorkspaceRepository)
}

func MakeDeleteWorkspaceController(app *App) *workspace.DeleteWorkspaceController {
	deleteWorkspaceRepository := workspace_repository.NewDeleteWorkspaceRepository(app.Db)
	findWorkspaceByIdRepository := workspace_repository.NewFindWorkspaceByIdRepository(app.Db)
	dependentsRepository := workspace_repository.NewWorkspaceDependentsRepository(app.Db)
	return workspace.NewDeleteWorkspaceController(deleteWorkspaceRepository, findWorkspaceByIdRepository, dependentsRepository)
}
