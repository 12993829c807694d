package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"duck-server/services/bot-api/internal/config"
	domain "duck-server/services/bot-api/internal/domain/bot"
	"duck-server/services/bot-api/internal/infrastructure/auth"
	"duck-server/services/bot-api/internal/infrastructure/database"
	"duck-server/services/bot-api/internal/infrastructure/logger"
	"duck-server/services/bot-api/internal/infrastructure/observability"
	botrepo "duck-server/services/bot-api/internal/infrastructure/repository/bot"
	categoryrepo "duck-server/services/bot-api/internal/infrastructure/repository/category"
	"duck-server/services/bot-api/internal/infrastructure/storage"
	"duck-server/services/bot-api/internal/interfaces/httpserver"
	"duck-server/services/bot-api/internal/interfaces/httpserver/handlers"
)

type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(database.Config{
		DSN:             cfg.GetDatabaseWriteDSN(),
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	storageBackend, err := provideStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize storage")
	}

	authValidator, err := auth.NewValidator(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize auth validator")
	}

	botRepository := botrepo.NewRepository(db)
	categoryRepository := categoryrepo.NewRepository(db)
	botService := domain.NewService(botRepository, categoryRepository, log)

	handlerProvider := handlers.NewProvider(
		handlers.NewBotHandler(botService, log),
		handlers.NewCategoryHandler(botService, log),
		handlers.NewUploadHandler(cfg, storageBackend, log),
	)

	httpServer := httpserver.New(cfg, log, handlerProvider, authValidator)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

// provideStorage creates the appropriate storage backend based on configuration.
func provideStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (storage.Storage, error) {
	if cfg.IsLocalStorage() {
		return storage.NewLocalStorage(cfg, log)
	}
	return storage.NewS3Storage(ctx, cfg, log)
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
