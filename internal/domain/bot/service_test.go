package bot_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"duck-server/services/bot-api/internal/domain/bot"
	"duck-server/services/bot-api/internal/utils/platformerrors"
)

// MockRepository is a func-field mock of bot.Repository.
type MockRepository struct {
	CreateFunc                 func(ctx context.Context, b *bot.Bot) error
	FindByPublicIDFunc         func(ctx context.Context, publicID string) (*bot.Bot, error)
	FindByPublicIDAndOwnerFunc func(ctx context.Context, publicID, ownerID string) (*bot.Bot, error)
	FindByFilterFunc           func(ctx context.Context, filter *bot.Filter) ([]*bot.Bot, error)
	UpdateOwnedFunc            func(ctx context.Context, publicID, ownerID string, params bot.Params) (*bot.Bot, error)
	DeleteOwnedFunc            func(ctx context.Context, publicID, ownerID string) (*bot.Bot, error)
}

func (m *MockRepository) Create(ctx context.Context, b *bot.Bot) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, b)
	}
	return nil
}

func (m *MockRepository) FindByPublicID(ctx context.Context, publicID string) (*bot.Bot, error) {
	if m.FindByPublicIDFunc != nil {
		return m.FindByPublicIDFunc(ctx, publicID)
	}
	return nil, nil
}

func (m *MockRepository) FindByPublicIDAndOwner(ctx context.Context, publicID, ownerID string) (*bot.Bot, error) {
	if m.FindByPublicIDAndOwnerFunc != nil {
		return m.FindByPublicIDAndOwnerFunc(ctx, publicID, ownerID)
	}
	return nil, nil
}

func (m *MockRepository) FindByFilter(ctx context.Context, filter *bot.Filter) ([]*bot.Bot, error) {
	if m.FindByFilterFunc != nil {
		return m.FindByFilterFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockRepository) UpdateOwned(ctx context.Context, publicID, ownerID string, params bot.Params) (*bot.Bot, error) {
	if m.UpdateOwnedFunc != nil {
		return m.UpdateOwnedFunc(ctx, publicID, ownerID, params)
	}
	return nil, nil
}

func (m *MockRepository) DeleteOwned(ctx context.Context, publicID, ownerID string) (*bot.Bot, error) {
	if m.DeleteOwnedFunc != nil {
		return m.DeleteOwnedFunc(ctx, publicID, ownerID)
	}
	return nil, nil
}

// MockCategoryRepository is a func-field mock of bot.CategoryRepository.
type MockCategoryRepository struct {
	ListFunc       func(ctx context.Context) ([]*bot.Category, error)
	BulkInsertFunc func(ctx context.Context, categories []*bot.Category) error
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*bot.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockCategoryRepository) BulkInsert(ctx context.Context, categories []*bot.Category) error {
	if m.BulkInsertFunc != nil {
		return m.BulkInsertFunc(ctx, categories)
	}
	return nil
}

func newTestService(repo bot.Repository) bot.Service {
	return bot.NewService(repo, &MockCategoryRepository{}, zerolog.Nop())
}

func testParams() bot.Params {
	return bot.Params{
		Src:         "https://cdn.example.com/avatars/owl.png",
		Name:        "Professor Hoot",
		Description: "A patient algebra tutor",
		Instruction: strings.Repeat("a", 200),
		Seed:        strings.Repeat("b", 200),
		CategoryID:  "cat_1",
	}
}

func TestService_Create(t *testing.T) {
	var stored *bot.Bot
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, b *bot.Bot) error {
			stored = b
			return nil
		},
	}

	service := newTestService(repo)
	owner := bot.Owner{ID: "user-1", Name: "Ada"}

	created, err := service.Create(context.Background(), owner, testParams())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if stored == nil {
		t.Fatal("expected repository Create to be called")
	}
	if created.UserID != "user-1" || created.UserName != "Ada" {
		t.Errorf("ownership not stamped: %+v", created)
	}
	if !strings.HasPrefix(created.PublicID, "bot_") {
		t.Errorf("expected bot_ public id, got %q", created.PublicID)
	}
}

func TestService_Create_RequiresIdentity(t *testing.T) {
	called := false
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, b *bot.Bot) error {
			called = true
			return nil
		},
	}

	service := newTestService(repo)

	for _, owner := range []bot.Owner{
		{},
		{ID: "user-1"},
		{Name: "Ada"},
	} {
		_, err := service.Create(context.Background(), owner, testParams())
		if err == nil {
			t.Fatalf("expected error for owner %+v", owner)
		}
		if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeUnauthorized) {
			t.Errorf("expected unauthorized error for owner %+v, got %v", owner, err)
		}
	}
	if called {
		t.Error("repository must not be called without a complete identity")
	}
}

func TestService_Update_NoMatchBecomesNotFound(t *testing.T) {
	repo := &MockRepository{
		UpdateOwnedFunc: func(ctx context.Context, publicID, ownerID string, params bot.Params) (*bot.Bot, error) {
			return nil, nil
		},
	}

	service := newTestService(repo)
	owner := bot.Owner{ID: "user-1", Name: "Ada"}

	_, err := service.Update(context.Background(), owner, "bot_missing", testParams())
	if err == nil {
		t.Fatal("expected error when the compound lookup matches nothing")
	}
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestService_Update_PassesCompoundKey(t *testing.T) {
	var gotPublicID, gotOwnerID string
	repo := &MockRepository{
		UpdateOwnedFunc: func(ctx context.Context, publicID, ownerID string, params bot.Params) (*bot.Bot, error) {
			gotPublicID = publicID
			gotOwnerID = ownerID
			return &bot.Bot{PublicID: publicID, UserID: ownerID, Name: params.Name}, nil
		},
	}

	service := newTestService(repo)
	owner := bot.Owner{ID: "user-1", Name: "Ada"}

	updated, err := service.Update(context.Background(), owner, "bot_1", testParams())
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if gotPublicID != "bot_1" || gotOwnerID != "user-1" {
		t.Errorf("expected compound key (bot_1, user-1), got (%s, %s)", gotPublicID, gotOwnerID)
	}
	if updated.Name != "Professor Hoot" {
		t.Errorf("unexpected updated name %q", updated.Name)
	}
}

func TestService_Delete_NoMatchIsNotAnError(t *testing.T) {
	repo := &MockRepository{
		DeleteOwnedFunc: func(ctx context.Context, publicID, ownerID string) (*bot.Bot, error) {
			return nil, nil
		},
	}

	service := newTestService(repo)

	deleted, err := service.Delete(context.Background(), "user-1", "bot_missing")
	if err != nil {
		t.Fatalf("expected no error for a no-match delete, got %v", err)
	}
	if deleted != nil {
		t.Errorf("expected nil record, got %+v", deleted)
	}
}

func TestService_Delete(t *testing.T) {
	repo := &MockRepository{
		DeleteOwnedFunc: func(ctx context.Context, publicID, ownerID string) (*bot.Bot, error) {
			return &bot.Bot{PublicID: publicID, UserID: ownerID}, nil
		},
	}

	service := newTestService(repo)

	deleted, err := service.Delete(context.Background(), "user-1", "bot_1")
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if deleted == nil || deleted.PublicID != "bot_1" {
		t.Errorf("expected deleted record echoed back, got %+v", deleted)
	}
}

func TestService_List_DefaultsFilter(t *testing.T) {
	var gotFilter *bot.Filter
	repo := &MockRepository{
		FindByFilterFunc: func(ctx context.Context, filter *bot.Filter) ([]*bot.Bot, error) {
			gotFilter = filter
			return nil, nil
		},
	}

	service := newTestService(repo)

	if _, err := service.List(context.Background(), nil); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if gotFilter == nil || gotFilter.Limit != 20 {
		t.Errorf("expected default filter with limit 20, got %+v", gotFilter)
	}
}
