package factory

import (
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/reference_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/wallet_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/workspace_repository"
	"github.com/familyledger/finance-backend/internal/presentation/controllers/wallet"
)

func MakeCreateWalletController(app *App) *wallet.CreateWalletController {
	createWalletRepository := wallet_repository.NewCreateWalletRepository(app.Db)
	findWorkspaceByIdRepository := workspace_repository.NewFindWorkspaceByIdRepository(app.Db)
	referenceExistsRepository := reference_repository.NewReferenceExistsRepository(app.Db)
	return wallet.NewCreateWalletController(createWalletRepository, findWorkspaceByIdRepository, referenceExistsRepository)
}

func MakeGetWalletsController(app *App) *wallet.GetWalletsController {
	findWalletsRepository := wallet_repository.NewFindWalletsByWorkspaceIdRepository(app.Db)
	return wallet.NewGetWalletsController(findWalletsRepository)
}

func MakeUpdateWalletController(app *App) *wallet.UpdateWalletController {
	updateWalletRepository := wallet_repository.NewUpdateWalletRepository(app.Db)
	findWalletByIdRepository := wallet_repository.NewFindWalletByIdRepository(app.Db)
	referenceExistsRepository := reference_repository.NewReferenceExistsRepository(app.Db)
	return wallet.NewUpdateWalletController(updateWalletRepository, findWalletByIdRepository, referenceExistsRepository)
}

func MakeDeleteWalletController(app *App) *wallet.DeleteWalletController {
	deleteWalletRepository := wallet_repository.NewDeleteWalletRepository(app.Db)
	findWalletByIdRepository := wallet_repository.NewFindWalletByIdRepository(app.Db)
	dependentsRepository := wallet_repository.NewWalletDependentsRepository(app.Db)
	return wallet.NewDeleteWalletController(deleteWalletRepository, findWalletByIdRepository, dependentsRepository)
}
