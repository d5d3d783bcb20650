package factory

import (
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/recurring"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/recurring_payment_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/redis_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/transaction_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/user_repository"
	"github.com/familyledger/finance-backend/internal/infra/db/mongodb/repositories/workspace_repository"
	"github.com/familyledger/finance-backend/internal/presentation/helpers"
	"github.com/familyledger/finance-backend/internal/utils"
)

// App carries the connections and settings every controller factory needs.
type App struct {
	Db        *mongo.Database
	Redis     *redis.Client
	Tokens    *utils.AccessTokenUtil
	Session   *helpers.SessionCookie
	Stages    *helpers.SetupStageResolver
	ExportTTL time.Duration
	// Horizon is how far ahead recurring payments are generated.
	Horizon time.Duration
	// Location is the zone cron schedules of recurring payments are read in.
	Location *time.Location
}

func NewApp(db *mongo.Database, redisClient *redis.Client, tokens *utils.AccessTokenUtil) *App {
	return &App{
		Db:        db,
		Redis:     redisClient,
		Tokens:    tokens,
		Session:   &helpers.SessionCookie{Tokens: tokens, Name: "finance-session", Secure: true},
		Stages:    MakeSetupStageResolver(db),
		ExportTTL: 10 * time.Minute,
		Horizon:   models.DefaultPaymentHorizon,
		Location:  time.Local,
	}
}

func (a *App) Now() time.Time {
	return time.Now().In(a.Location)
}

func MakeSetupStageResolver(db *mongo.Database) *helpers.SetupStageResolver {
	countUsersRepository := user_repository.NewFindUsersRepository(db)
	countWorkspacesRepository := workspace_repository.NewFindWorkspacesRepository(db)
	return helpers.NewSetupStageResolver(countUsersRepository, countWorkspacesRepository)
}

func MakeRecurringService(app *App) *recurring.Service {
	createTransactionsRepository := transaction_repository.NewCreateTransactionRepository(app.Db)
	findPendingTransactionsRepository := transaction_repository.NewFindPendingTransactionsRepository(app.Db)
	deleteTransactionsRepository := transaction_repository.NewDeleteTransactionRepository(app.Db)
	updateStateRepository := recurring_payment_repository.NewUpdateRecurringPaymentStateRepository(app.Db)
	service := recurring.NewService(createTransactionsRepository, findPendingTransactionsRepository, deleteTransactionsRepository, updateStateRepository)
	service.Horizon = app.Horizon
	service.InvalidateExportsRepository = redis_repository.NewExportCacheRepository(app.Redis)
	return service
}
