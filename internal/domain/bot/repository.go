package bot

import "context"

// Repository exposes persistence operations for bots. Mutations take the
// owner id as part of the lookup key so ownership is enforced inside the
// same store operation that performs the write, never as a preceding read.
type Repository interface {
	Create(ctx context.Context, b *Bot) error
	FindByPublicID(ctx context.Context, publicID string) (*Bot, error)
	FindByPublicIDAndOwner(ctx context.Context, publicID, ownerID string) (*Bot, error)
	FindByFilter(ctx context.Context, filter *Filter) ([]*Bot, error)

	// UpdateOwned replaces the editable fields of the bot matching both
	// publicID and ownerID. Returns nil when no row matched.
	UpdateOwned(ctx context.Context, publicID, ownerID string, params Params) (*Bot, error)

	// DeleteOwned removes the bot matching both publicID and ownerID.
	// Returns the deleted record, or nil when no row matched.
	DeleteOwned(ctx context.Context, publicID, ownerID string) (*Bot, error)
}

// CategoryRepository persists the fixed category reference data.
type CategoryRepository interface {
	List(ctx context.Context) ([]*Category, error)
	BulkInsert(ctx context.Context, categories []*Category) error
}
