package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"duck-server/services/bot-api/internal/infrastructure/database/entities"
)

// AutoMigrate applies database schema changes.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&entities.Category{},
		&entities.Bot{},
		&entities.Message{},
	); err != nil {
		return err
	}
	log.Info().Msg("applied bot schema migrations")
	return nil
}
