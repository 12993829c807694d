package bot

import (
	"context"

	"github.com/rs/zerolog"

	"duck-server/services/bot-api/internal/infrastructure/observability"
	"duck-server/services/bot-api/internal/utils/platformerrors"
	"duck-server/services/bot-api/utils/botid"
)

// Service defines the bot business logic.
type Service interface {
	Create(ctx context.Context, owner Owner, params Params) (*Bot, error)
	Update(ctx context.Context, owner Owner, publicID string, params Params) (*Bot, error)
	// Delete returns the deleted record, or nil when nothing matched the
	// (publicID, ownerID) pair. A non-match is not an error.
	Delete(ctx context.Context, ownerID, publicID string) (*Bot, error)
	GetByPublicID(ctx context.Context, publicID string) (*Bot, error)
	List(ctx context.Context, filter *Filter) ([]*Bot, error)
	ListCategories(ctx context.Context) ([]*Category, error)
}

// DefaultService implements the Service interface.
type DefaultService struct {
	repo       Repository
	categories CategoryRepository
	log        zerolog.Logger
}

// NewService creates a new bot service.
func NewService(repo Repository, categories CategoryRepository, log zerolog.Logger) Service {
	return &DefaultService{
		repo:       repo,
		categories: categories,
		log:        log.With().Str("component", "bot-service").Logger(),
	}
}

// Create persists a new bot owned by the caller. The category reference is
// enforced by the store's foreign key, not validated here.
func (s *DefaultService) Create(ctx context.Context, owner Owner, params Params) (*Bot, error) {
	if owner.ID == "" || owner.Name == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeUnauthorized,
			"bot creation requires a resolvable identity",
			nil,
			"b7d1a6f2-1c54-4b0e-9a3d-5e8f0c2d4a61",
		)
	}

	b := &Bot{
		PublicID:    botid.NewBot(),
		Src:         params.Src,
		Name:        params.Name,
		Description: params.Description,
		Instruction: params.Instruction,
		Seed:        params.Seed,
		CategoryID:  params.CategoryID,
		UserID:      owner.ID,
		UserName:    owner.Name,
	}

	ctx, span := observability.StartBotSpan(ctx, "create", b.PublicID, owner.ID, params.CategoryID)
	defer span.End()

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.log.Info().Str("bot_id", b.PublicID).Str("owner_id", owner.ID).Msg("bot created")
	return b, nil
}

// Update replaces the editable fields of an owned bot. The compound
// (publicID, ownerID) filter runs inside the store; a record that exists
// under a different owner is indistinguishable from a missing one.
func (s *DefaultService) Update(ctx context.Context, owner Owner, publicID string, params Params) (*Bot, error) {
	ctx, span := observability.StartBotSpan(ctx, "update", publicID, owner.ID, params.CategoryID)
	defer span.End()

	updated, err := s.repo.UpdateOwned(ctx, publicID, owner.ID, params)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeNotFound,
			"bot not found",
			nil,
			"4c9e2b17-8f3a-4d6c-b0e5-7a1d9f3c5b82",
		)
	}

	s.log.Info().Str("bot_id", publicID).Str("owner_id", owner.ID).Msg("bot updated")
	return updated, nil
}

// Delete removes an owned bot. Repeating a delete for an already-deleted
// or never-existing pair is a no-op.
func (s *DefaultService) Delete(ctx context.Context, ownerID, publicID string) (*Bot, error) {
	ctx, span := observability.StartBotSpan(ctx, "delete", publicID, ownerID, "")
	defer span.End()

	deleted, err := s.repo.DeleteOwned(ctx, publicID, ownerID)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		s.log.Debug().Str("bot_id", publicID).Str("owner_id", ownerID).Msg("delete matched no record")
		return nil, nil
	}

	s.log.Info().Str("bot_id", publicID).Str("owner_id", ownerID).Msg("bot deleted")
	return deleted, nil
}

// GetByPublicID fetches a bot with its messages and message count.
func (s *DefaultService) GetByPublicID(ctx context.Context, publicID string) (*Bot, error) {
	return s.repo.FindByPublicID(ctx, publicID)
}

// List fetches bots matching the filter.
func (s *DefaultService) List(ctx context.Context, filter *Filter) ([]*Bot, error) {
	if filter == nil {
		filter = NewFilter()
	}
	return s.repo.FindByFilter(ctx, filter)
}

// ListCategories returns the fixed category reference data.
func (s *DefaultService) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.categories.List(ctx)
}
