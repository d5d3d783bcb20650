package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	mongoHelpers "github.com/familyledger/finance-backend/internal/infra/db/mongodb/helpers"
	"github.com/familyledger/finance-backend/internal/jobs"
	"github.com/familyledger/finance-backend/internal/setup"
	"github.com/familyledger/finance-backend/internal/setup/config"
	"github.com/familyledger/finance-backend/internal/setup/factory"
	"github.com/familyledger/finance-backend/internal/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the job scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runServe(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// connect opens the databases and builds the application wiring. The
// returned func closes the connections.
func connect(ctx context.Context, cfg *config.Config) (*factory.App, func(), error) {
	location, err := cfg.Location()
	if err != nil {
		return nil, nil, fmt.Errorf("recurring.timezone: %w", err)
	}

	tokens, err := utils.NewAccessTokenUtil(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, nil, err
	}

	db, err := mongoHelpers.MongoHelper(ctx, cfg.Mongo.Uri, cfg.Mongo.Database)
	if err != nil {
		return nil, nil, err
	}

	redisClient, err := mongoHelpers.RedisHelper(cfg.Redis.Url)
	if err != nil {
		mongoHelpers.DisconnectMongo(db)
		return nil, nil, err
	}

	app := factory.NewApp(db, redisClient, tokens)
	app.Session.Name = cfg.Auth.CookieName
	app.Session.Secure = cfg.Auth.SecureCookie
	app.ExportTTL = cfg.Export.TTL
	app.Location = location
	app.Horizon = cfg.Horizon()

	closeAll := func() {
		mongoHelpers.DisconnectRedis()
		mongoHelpers.DisconnectMongo(db)
	}
	return app, closeAll, nil
}

func runServe(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	app, closeAll, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeAll()

	if err := mongoHelpers.EnsureIndexes(ctx, app.Db); err != nil {
		return err
	}

	scheduler := jobs.NewScheduler(app.Location)
	task := factory.MakeRecurringPaymentsTask(app)
	if _, err := scheduler.Register(jobs.UpdateRecurringPaymentsJob, cfg.Recurring.Schedule, task.Run); err != nil {
		return fmt.Errorf("recurring.schedule: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	sm := http.Server{
		Addr:         cfg.ListenAddress(),
		Handler:      setup.Server(app, cfg),
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.WithField("address", sm.Addr).Info("Server is running")
		if err := sm.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-sigChan:
		log.WithField("signal", sig.String()).Info("Received terminate, graceful shutdown")
	}

	tc, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return sm.Shutdown(tc)
}
