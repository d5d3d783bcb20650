package factory

import (
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/asset_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/reference_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/workspace_repository"
	"github.com/familyledger/finance-backend/internal/presentation/controllers/asset"
)

func MakeCreateAssetController(app *App) *asset.CreateAssetController {
	createAssetRepository := asset_repository.NewCreateAssetRepository(app.Db)
	findWorkspaceByIdRepository := workspace_repository.NewFindWorkspaceByIdRepository(app.Db)
	referenceExistsRepository := reference_repository.NewReferenceExistsRepository(app.Db)
	return asset.NewCreateAssetController(createAssetRepository, findWorkspaceByIdRepository, referenceExistsRepository)
}

func MakeGetAssetsController(app *App) *asset.GetAssetsController {
	findAssetsRepository := asset_repository.NewFindAssetsByWorkspaceIdRepository(app.Db)
	return asset.NewGetAssetsController(findAssetsRepository)
}

func MakeUpdateAssetController(app *App) *asset.UpdateAssetController {
	updateAssetRepository := asset_repository.NewUpdateAssetRepository(app.Db)
	findAssetByIdRepository := asset_repository.NewFindAssetByIdRepository(app.Db)
	referenceExistsRepository := reference_repository.NewReferenceExistsRepository(app.Db)
	return asset.NewUpdateAssetController(updateAssetRepository, findAssetByIdRepository, referenceExistsRepository)
}

func MakeDeleteAssetController(app *App) *asset.DeleteAssetController {
	deleteAssetRepository := asset_repository.NewDeleteAssetRepository(app.Db)
	findAssetByIdRepository := asset_repository.NewFindAssetByIdRepository(app.Db)
	dependentsRepository := asset_repository.NewAssetDependentsRepository(app.Db)
	return asset.NewDeleteAssetController(deleteAssetRepository, findAssetByIdRepository, dependentsRepository)
}
