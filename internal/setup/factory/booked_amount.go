package factory

import (
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/booked_amount_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/redis_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/reference_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/transaction_repository"
	"github.com/familyledger/finance-backend/internal/presentation/controllers/booked_amount"
)

func MakeCreateBookedAmountController(app *App) *booked_amount.CreateBookedAmountController {
	createBookedAmountRepository := booked_amount_repository.NewCreateBookedAmountRepository(app.Db)
	findTransactionByIdRepository := transaction_repository.NewFindTransactionByIdRepository(app.Db)
	referenceExistsRepository := reference_repository.NewReferenceExistsRepository(app.Db)
	exportCacheRepository := redis_repository.NewExportCacheRepository(app.Redis)
	return booked_amount.NewCreateBookedAmountController(createBookedAmountRepository, findTransactionByIdRepository, referenceExistsRepository, exportCacheRepository)
}

func MakeGetBookedAmountsController(app *App) *booked_amount.GetBookedAmountsController {
	findBookedAmountsRepository := booked_amount_repository.NewFindBookedAmountsByTransactionIdRepository(app.Db)
	return booked_amount.NewGetBookedAmountsController(findBookedAmountsRepository)
}

func MakeUpdateBookedAmountController(app *App) *booked_amount.UpdateBookedAmountController {
	updateBookedAmountRepository := booked_amount_repository.NewUpdateBookedAmountRepository(app.Db)
	findBookedAmountByIdRepository := booked_amount_repository.NewFindBookedAmountByIdRepository(app.Db)
	findTransactionByIdRepository := transaction_repository.NewFindTransactionByIdRepository(app.Db)
	referenceExistsRepository := reference_repository.NewReferenceExistsRepository(app.Db)
	exportCacheRepository := redis_repository.NewExportCacheRepository(app.Redis)
	return booked_amount.NewUpdateBookedAmountController(updateBookedAmountRepository, findBookedAmountByIdRepository, findTransactionByIdRepository, referenceExistsRepository, exportCacheRepository)
}

func MakeDeleteBookedAmountController(app *App) *booked_amount.DeleteBookedAmountController {
	deleteBookedAmountRepository := booked_amount_repository.NewDeleteBookedAmountRepository(app.Db)
	findBookedAmountByIdRepository := booked_amount_repository.NewFindBookedAmountByIdRepository(app.Db)
	findTransactionByIdRepository := transaction_repository.NewFindTransactionByIdRepository(app.Db)
	exportCacheRepository := redis_repository.NewExportCacheRepository(app.Redis)
	return booked_amount.NewDeleteBookedAmountController(deleteBookedAmountRepository, findBookedAmountByIdRepository, findTransactionByIdRepository, exportCacheRepository)
}
