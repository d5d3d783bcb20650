package factory

import (
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/recurring_payment_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/redis_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/reference_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/transaction_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/workspace_repository"
	"github.com/familyledger/finance-backend/internal/jobs"
	"github.com/familyledger/finance-backend/internal/presentation/controllers/recurring_payment"
)

func MakeCreateRecurringPaymentController(app *App) *recurring_payment.CreateRecurringPaymentController {
	createRecurringPaymentRepository := recurring_payment_repository.NewCreateRecurringPaymentRepository(app.Db)
	findWorkspaceByIdRepository := workspace_repository.NewFindWorkspaceByIdRepository(app.Db)
	referenceExistsRepository := reference_repository.NewReferenceExistsRepository(app.Db)
	return recurring_payment.NewCreateRecurringPaymentController(
		createRecurringPaymentRepository,
		findWorkspaceByIdRepository,
		referenceExistsRepository,
		MakeRecurringService(app),
		app.Now,
	)
}

func MakeGetRecurringPaymentsController(app *App) *recurring_payment.GetRecurringPaymentsController {
	findRecurringPaymentsRepository := recurring_payment_repository.NewFindRecurringPaymentsByWorkspaceIdRepository(app.Db)
	return recurring_payment.NewGetRecurringPaymentsController(findRecurringPaymentsRepository, app.Now)
}

func MakeUpdateRecurringPaymentController(app *App) *recurring_payment.UpdateRecurringPaymentController {
	updateRecurringPaymentRepository := recurring_payment_repository.NewUpdateRecurringPaymentRepository(app.Db)
	findRecurringPaymentByIdRepository := recurring_payment_repository.NewFindRecurringPaymentByIdRepository(app.Db)
	referenceExistsRepository := reference_repository.NewReferenceExistsRepository(app.Db)
	return recurring_payment.NewUpdateRecurringPaymentController(updateRecurringPaymentRepository, findRecurringPaymentByIdRepository, referenceExistsRepository, app.Now)
}

func MakeDeleteRecurringPaymentController(app *App) *recurring_payment.DeleteRecurringPaymentController {
	deleteRecurringPaymentRepository := recurring_payment_repository.NewDeleteRecurringPaymentRepository(app.Db)
	findRecurringPaymentByIdRepository := recurring_payment_repository.NewFindRecurringPaymentByIdRepository(app.Db)
	releaseRepository := transaction_repository.NewReleaseGeneratedTransactionsRepository(app.Db)
	return recurring_payment.NewDeleteRecurringPaymentController(deleteRecurringPaymentRepository, findRecurringPaymentByIdRepository, releaseRepository)
}

func MakeUpdatePaymentsController(app *App) *recurring_payment.UpdatePaymentsController {
	findRecurringPaymentByIdRepository := recurring_payment_repository.NewFindRecurringPaymentByIdRepository(app.Db)
	return recurring_payment.NewUpdatePaymentsController(findRecurringPaymentByIdRepository, MakeRecurringService(app), app.Now)
}

func MakeRecurringPaymentsTask(app *App) *jobs.RecurringPaymentsTask {
	findAllWorkspacesRepository := workspace_repository.NewFindWorkspacesRepository(app.Db)
	findActiveRepository := recurring_payment_repository.NewFindActiveRecurringPaymentsRepository(app.Db)
	lockRepository := redis_repository.NewLockRepository(app.Redis)
	return jobs.NewRecurringPaymentsTask(
		findAllWorkspacesRepository,
		findActiveRepository,
		MakeRecurringService(app),
		lockRepository,
		redis_repository.JobLockKey,
		app.Now,
	)
}
