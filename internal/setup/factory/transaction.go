package factory

import (
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/redis_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/reference_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/transaction_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/workspace_repository"
	"github.com/familyledger/finance-backend/internal/presentation/controllers/transaction"
)

func MakeCreateTransactionController(app *App) *transaction.CreateTransactionController {
	createTransactionRepository := transaction_repository.NewCreateTransactionRepository(app.Db)
	findWorkspaceByIdRepository := workspace_repository.NewFindWorkspaceByIdRepository(app.Db)
	referenceExistsRepository := reference_repository.NewReferenceExistsRepository(app.Db)
	exportCacheRepository := redis_repository.NewExportCacheRepository(app.Redis)
	return transaction.NewCreateTransactionController(createTransactionRepository, findWorkspaceByIdRepository, referenceExistsRepository, exportCacheRepository)
}

func MakeGetTransactionsController(app *App) *transaction.GetTransactionsController {
	findTransactionsRepository := transaction_repository.NewFindTransactionsByWorkspaceIdRepository(app.Db)
	return transaction.NewGetTransactionsController(findTransactionsRepository)
}

func MakeUpdateTransactionController(app *App) *transaction.UpdateTransactionController {
	updateTransactionRepository := transaction_repository.NewUpdateTransactionRepository(app.Db)
	findTransactionByIdRepository := transaction_repository.NewFindTransactionByIdRepository(app.Db)
	referenceExistsRepository := reference_repository.NewReferenceExistsRepository(app.Db)
	exportCacheRepository := redis_repository.NewExportCacheRepository(app.Redis)
	return transaction.NewUpdateTransactionController(updateTransactionRepository, findTransactionByIdRepository, referenceExistsRepository, exportCacheRepository)
}

func MakeDeleteTransactionController(app *App) *transaction.DeleteTransactionController {
	deleteTransactionRepository := transaction_repository.NewDeleteTransactionRepository(app.Db)
	findTransactionByIdRepository := transaction_repository.NewFindTransactionByIdRepository(app.Db)
	dependentsRepository := transaction_repository.NewTransactionDependentsRepository(app.Db)
	exportCacheRepository := redis_repository.NewExportCacheRepository(app.Redis)
	return transaction.NewDeleteTransactionController(deleteTransactionRepository, findTransactionByIdRepository, dependentsRepository, exportCacheRepository)
}

func MakeExportTransactionsController(app *App) *transaction.ExportTransactionsController {
	findAllTransactionsRepository := transaction_repository.NewFindAllTransactionsRepository(app.Db)
	exportCacheRepository := redis_repository.NewExportCacheRepository(app.Redis)
	return transaction.NewExportTransactionsController(findAllTransactionsRepository, exportCacheRepository, redis_repository.ExportKey, app.ExportTTL)
}
