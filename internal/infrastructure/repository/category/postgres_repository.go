package category

import (
	"context"

	"gorm.io/gorm"

	domain "duck-server/services/bot-api/internal/domain/bot"
	"duck-server/services/bot-api/internal/infrastructure/database/entities"
	"duck-server/services/bot-api/internal/utils/platformerrors"
)

// Repository persists category reference data.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a category repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all categories. Ordering carries no meaning for callers
// but is kept stable for the form select.
func (r *Repository) List(ctx context.Context) ([]*domain.Category, error) {
	var rows []entities.Category
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list categories",
			err,
			"0b4d7f1a-3c6e-4b9d-a2f5-8c1e4a7d0b36",
		)
	}

	result := make([]*domain.Category, len(rows))
	for i := range rows {
		result[i] = rows[i].EtoD()
	}
	return result, nil
}

// BulkInsert writes the given categories in one batch. Used by the seed
// command only; there is no uniqueness guard, so re-seeding duplicates.
func (r *Repository) BulkInsert(ctx context.Context, categories []*domain.Category) error {
	rows := make([]entities.Category, len(categories))
	for i, c := range categories {
		rows[i] = *entities.NewSchemaCategory(c)
	}

	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to insert categories",
			err,
			"4e8a1c5d-7f0b-4d3a-9b6e-2a5c8f1d4e70",
		)
	}

	for i := range rows {
		categories[i].ID = rows[i].ID
		categories[i].CreatedAt = rows[i].CreatedAt
		categories[i].UpdatedAt = rows[i].UpdatedAt
	}
	return nil
}
