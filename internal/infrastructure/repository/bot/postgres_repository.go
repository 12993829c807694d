package bot

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "duck-server/services/bot-api/internal/domain/bot"
	"duck-server/services/bot-api/internal/infrastructure/database/entities"
	"duck-server/services/bot-api/internal/utils/platformerrors"
)

// Repository persists bot records.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a bot repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the bot record. A category reference that does not exist
// surfaces as a foreign key violation from the store.
func (r *Repository) Create(ctx context.Context, b *domain.Bot) error {
	entity := entities.NewSchemaBot(b)

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create bot",
			err,
			"8f2c5a1d-3e7b-4c9f-a0d6-1b4e7f2a5c83",
		)
	}

	b.ID = entity.ID
	b.CreatedAt = entity.CreatedAt
	b.UpdatedAt = entity.UpdatedAt
	return nil
}

// FindByPublicID fetches a bot with its messages by public ID.
func (r *Repository) FindByPublicID(ctx context.Context, publicID string) (*domain.Bot, error) {
	var entity entities.Bot
	if err := r.db.WithContext(ctx).
		Preload("Messages").
		Where("public_id = ?", publicID).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				fmt.Sprintf("bot not found: %s", publicID),
				nil,
				"2a6d9c4e-7f1b-4e8a-b3c5-0d7f2e9a4c16",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch bot",
			err,
			"5b8e1f3a-9c2d-4a7e-8f0b-6d3a5c8e1f94",
		)
	}

	return entity.EtoD(), nil
}

// FindByPublicIDAndOwner fetches a bot only when the owner matches. A
// record owned by someone else yields the same not found error as a
// missing one.
func (r *Repository) FindByPublicIDAndOwner(ctx context.Context, publicID, ownerID string) (*domain.Bot, error) {
	var entity entities.Bot
	if err := r.db.WithContext(ctx).
		Where("public_id = ? AND user_id = ?", publicID, ownerID).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				fmt.Sprintf("bot not found: %s", publicID),
				nil,
				"7c1f4a8d-2b6e-4d9a-a5c3-8e0f6b2d4a71",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch bot",
			err,
			"9d3a6c1e-5f8b-4b2d-9e7a-4c0f8d3b6e25",
		)
	}

	return entity.EtoD(), nil
}

// FindByFilter fetches bots matching the filter criteria, newest first.
func (r *Repository) FindByFilter(ctx context.Context, filter *domain.Filter) ([]*domain.Bot, error) {
	query := r.db.WithContext(ctx).Model(&entities.Bot{})

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Name != nil {
		query = query.Where("name ILIKE ?", *filter.Name+"%")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var rows []entities.Bot
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find bots",
			err,
			"1e5b8d2f-6a9c-4c3e-b7d0-2f4a8c6e0b39",
		)
	}

	result := make([]*domain.Bot, len(rows))
	for i := range rows {
		result[i] = rows[i].EtoD()
	}
	return result, nil
}

// UpdateOwned replaces the editable fields of the bot matching both
// publicID and ownerID in a single statement. The compound predicate is
// the ownership check; there is no separate read before the write.
func (r *Repository) UpdateOwned(ctx context.Context, publicID, ownerID string, params domain.Params) (*domain.Bot, error) {
	var entity entities.Bot
	res := r.db.WithContext(ctx).
		Model(&entity).
		Clauses(clause.Returning{}).
		Where("public_id = ? AND user_id = ?", publicID, ownerID).
		Updates(map[string]any{
			"src":         params.Src,
			"name":        params.Name,
			"description": params.Description,
			"instruction": params.Instruction,
			"seed":        params.Seed,
			"category_id": params.CategoryID,
		})
	if res.Error != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update bot",
			res.Error,
			"3f7a0c4e-8b1d-4e6a-9c2f-5d8b0e3a7c14",
		)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return entity.EtoD(), nil
}

// DeleteOwned removes the bot matching both publicID and ownerID in a
// single statement and returns the deleted record, nil when no row matched.
func (r *Repository) DeleteOwned(ctx context.Context, publicID, ownerID string) (*domain.Bot, error) {
	var deleted []entities.Bot
	res := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("public_id = ? AND user_id = ?", publicID, ownerID).
		Delete(&deleted)
	if res.Error != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete bot",
			res.Error,
			"6c9e2a5f-0d3b-4a8c-8e1d-7f4b9c2e5a60",
		)
	}
	if res.RowsAffected == 0 || len(deleted) == 0 {
		return nil, nil
	}

	return deleted[0].EtoD(), nil
}
