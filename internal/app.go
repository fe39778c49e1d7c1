// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	router "campus-roster/internal/api"
	"campus-roster/internal/api/handler"
	"campus-roster/internal/config"
	"campus-roster/internal/metrics"
	"campus-roster/internal/service"
	"campus-roster/internal/util"
	"campus-roster/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger

	// Database access: one connection per executor invocation, no pool.
	Provisioner *db.Provisioner
	Executor    *db.Executor
	Metrics     *metrics.TransactionMetrics

	// Services
	RosterService service.RosterService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize loads configuration from the environment and initializes all
// application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize Logger
	util.InitLogger(util.LogOptions{Level: cfg.LogLevel, File: cfg.LogFile})
	return app.InitializeWithConfig(ctx, cfg, util.GetLogger())
}

// InitializeWithConfig wires the components from an already loaded config.
func (app *Application) InitializeWithConfig(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) error {
	app.Config = cfg
	app.Logger = logger
	app.Logger.Info("Application configuration loaded successfully.", "driver", cfg.DB.Driver)

	// 3. Database access. No connection is opened here; the executor
	// provisions one per unit of work.
	app.Provisioner = db.NewProvisioner(app.Config.DB)
	app.Metrics = metrics.New("roster")
	app.Executor = db.NewExecutor(app.Provisioner,
		db.WithLogger(app.Logger),
		db.WithObserver(app.Metrics),
	)
	app.Logger.Info("Transactional executor initialized.")

	// 4. Initialize Services
	app.RosterService = service.NewRosterService(app.Executor, app.Config.DB.Dialect(), app.Logger)
	app.Logger.Info("Services initialized.")

	// 5. Initialize HTTP Handlers and Router
	rosterHandler := handler.NewRosterHandler(app.RosterService, app.Logger)
	app.HTTPHandler = router.NewRouter(rosterHandler, app.Metrics.Handler(), app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown releases application resources. Connections never outlive an
// executor invocation, so there is nothing to close beyond logging.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
