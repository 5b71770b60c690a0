package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/mkurosawa/kotoba-api/internal/api"
	"github.com/mkurosawa/kotoba-api/internal/catalog"
	"github.com/mkurosawa/kotoba-api/internal/config"
	"github.com/mkurosawa/kotoba-api/internal/events"
	"github.com/mkurosawa/kotoba-api/internal/platform/gemini"
	"github.com/mkurosawa/kotoba-api/internal/platform/postgres"
	"github.com/mkurosawa/kotoba-api/internal/platform/rediscache"
	"github.com/mkurosawa/kotoba-api/internal/quiz"
	"github.com/mkurosawa/kotoba-api/internal/service"
	"github.com/mkurosawa/kotoba-api/internal/service/auth"
	"github.com/mkurosawa/kotoba-api/internal/store"
	"github.com/mkurosawa/kotoba-api/internal/task"
)

// application holds the shared application dependencies so wiring and
// cleanup live in one place.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore     store.UserStore
	progressStore store.ProgressStore
	taskStore     task.TaskStore
	userRegistrar api.UserRegistrar

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier

	catalog     *catalog.Catalog
	quizService *quiz.Service

	eventEmitter  events.EventEmitter
	taskRunner    *task.TaskRunner
	mnemonicCache *rediscache.MnemonicCache
}

// newApplication creates an application instance with all dependencies
// initialized. The configuration, logger, and database connection must be
// established first.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	verifier := auth.NewBcryptVerifier(cfg.Auth.BcryptCost)
	app.passwordVerifier = verifier

	app.catalog, err = catalog.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	app.userStore = postgres.NewPostgresUserStore(db, verifier, logger)
	app.progressStore = postgres.NewPostgresProgressStore(db, logger)

	// Registration writes the user row and the initial progress row in one
	// transaction.
	app.userRegistrar = service.NewUserService(db, app.userStore, app.progressStore, logger)

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.quizService = quiz.NewService(app.progressStore, app.catalog, app.eventEmitter, logger)

	generator, err := gemini.NewGenerator(ctx, logger.With("component", "llm_generator"), cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mnemonic generator: %w", err)
	}
	logger.Info("mnemonic generator initialized")

	var cache task.MnemonicCache
	if cfg.Redis.Enabled {
		redisCfg := rediscache.DefaultConfig()
		redisCfg.Host = cfg.Redis.Host
		redisCfg.Port = cfg.Redis.Port
		redisCfg.Password = cfg.Redis.Password
		redisCfg.DB = cfg.Redis.DB

		app.mnemonicCache, err = rediscache.New(redisCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		cache = app.mnemonicCache
		logger.Info("mnemonic cache connected", "addr", redisCfg.Addr())
	}

	hintFactory := task.NewHintGenerationTaskFactory(
		app.catalog,
		generator,
		cache,
		app.quizService,
		logger,
	)

	// Recovered tasks are rebuilt from their persisted payloads through the
	// same factory, so they execute exactly like freshly submitted ones.
	app.taskStore = postgres.NewPostgresTaskStore(db, func(taskType string, payload []byte) (postgres.ExecuteFunc, error) {
		if taskType != task.TaskTypeHintGeneration {
			return nil, fmt.Errorf("no executor for task type %q", taskType)
		}
		t, err := hintFactory.NewTask(payload)
		if err != nil {
			return nil, err
		}
		return t.Execute, nil
	})

	app.taskRunner, err = setupTaskRunner(app)
	if err != nil {
		return nil, fmt.Errorf("failed to set up task runner: %w", err)
	}

	hintHandler := task.NewHintEventHandler(hintFactory, app.taskRunner, logger)
	if emitter, ok := app.eventEmitter.(*events.InMemoryEventEmitter); ok {
		emitter.RegisterHandler(hintHandler)
	} else {
		return nil, fmt.Errorf("unexpected event emitter type, cannot register hint handler")
	}

	logger.Info("application initialized")
	return app, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// setupTaskRunner initializes and starts the background task processor.
func setupTaskRunner(app *application) (*task.TaskRunner, error) {
	runner := task.NewTaskRunner(app.taskStore, task.TaskRunnerConfig{
		WorkerCount:            app.config.Task.WorkerCount,
		QueueSize:              app.config.Task.QueueSize,
		StuckTaskAge:           time.Duration(app.config.Task.StuckTaskAgeMinutes) * time.Minute,
		StuckTaskCheckInterval: time.Duration(app.config.Task.StuckTaskCheckIntervalMin) * time.Minute,
	}, app.logger)

	if err := runner.Start(); err != nil {
		return nil, fmt.Errorf("failed to start task runner: %w", err)
	}
	return runner, nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.taskRunner != nil {
		app.taskRunner.Stop()
	}

	if app.mnemonicCache != nil {
		if err := app.mnemonicCache.Close(); err != nil {
			app.logger.Error("error closing redis connection", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
