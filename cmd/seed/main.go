// Command seed inserts the default bot categories. It is a one-shot tool
// run once against a fresh database; there is no uniqueness guard, so
// running it again inserts duplicate labels.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	gormlogger "gorm.io/gorm/logger"

	"duck-server/services/bot-api/internal/config"
	domain "duck-server/services/bot-api/internal/domain/bot"
	"duck-server/services/bot-api/internal/infrastructure/database"
	"duck-server/services/bot-api/internal/infrastructure/logger"
	categoryrepo "duck-server/services/bot-api/internal/infrastructure/repository/category"
	"duck-server/services/bot-api/utils/botid"
)

var defaultCategories = []string{
	"Math",
	"STEM",
	"Education",
	"Social Sciences",
	"Fine Arts and Communication",
	"Humanities",
	"International Studies",
	"Law",
	"Life Sciences",
	"Nursing",
	"Religious Education",
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

	categories := make([]*domain.Category, len(defaultCategories))
	for i, name := range defaultCategories {
		categories[i] = &domain.Category{
			PublicID: botid.NewCategory(),
			Name:     name,
		}
	}

	repo := categoryrepo.NewRepository(db)
	if err := repo.BulkInsert(ctx, categories); err != nil {
		log.Fatal().Err(err).Msg("seed default categories")
	}

	log.Info().Int("count", len(categories)).Msg("seeded default categories")
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
