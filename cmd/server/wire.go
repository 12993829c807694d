//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"duck-server/services/bot-api/internal/config"
	domain "duck-server/services/bot-api/internal/domain/bot"
	"duck-server/services/bot-api/internal/infrastructure/auth"
	"duck-server/services/bot-api/internal/infrastructure/database"
	"duck-server/services/bot-api/internal/infrastructure/logger"
	botrepo "duck-server/services/bot-api/internal/infrastructure/repository/bot"
	categoryrepo "duck-server/services/bot-api/internal/infrastructure/repository/category"
	"duck-server/services/bot-api/internal/interfaces/httpserver"
	"duck-server/services/bot-api/internal/interfaces/httpserver/handlers"
)

var botSet = wire.NewSet(
	botrepo.NewRepository,
	wire.Bind(new(domain.Repository), new(*botrepo.Repository)),
	categoryrepo.NewRepository,
	wire.Bind(new(domain.CategoryRepository), new(*categoryrepo.Repository)),
	domain.NewService,
)

var handlerSet = wire.NewSet(
	provideStorage,
	handlers.NewBotHandler,
	handlers.NewCategoryHandler,
	handlers.NewUploadHandler,
	handlers.NewProvider,
)

// BuildApplication assembles the bot API with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		auth.NewValidator,
		newDatabaseConfig,
		newGormDB,
		botSet,
		handlerSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		DSN:             cfg.GetDatabaseWriteDSN(),
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	}
}

func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}
