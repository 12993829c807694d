package responses

import (
	"time"

	domain "duck-server/services/bot-api/internal/domain/bot"
)

// BotResponse is the stored bot representation returned by the API.
type BotResponse struct {
	ID           string            `json:"id"`
	Src          string            `json:"src"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Instruction  string            `json:"instruction"`
	Seed         string            `json:"seed"`
	CategoryID   string            `json:"categoryId"`
	UserID       string            `json:"userId"`
	UserName     string            `json:"userName"`
	MessageCount int64             `json:"message_count"`
	Messages     []MessageResponse `json:"messages,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// MessageResponse is a single chat turn in the bot detail view.
type MessageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryResponse is a single category label.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UploadResponse carries the stable URL of an uploaded avatar.
type UploadResponse struct {
	URL string `json:"url"`
}

// NewBotResponse maps a domain bot to its API representation.
func NewBotResponse(b *domain.Bot) BotResponse {
	messages := make([]MessageResponse, len(b.Messages))
	for i, m := range b.Messages {
		messages[i] = MessageResponse{
			ID:        m.PublicID,
			Role:      string(m.Role),
			Content:   m.Content,
			UserID:    m.UserID,
			CreatedAt: m.CreatedAt,
		}
	}

	return BotResponse{
		ID:           b.PublicID,
		Src:          b.Src,
		Name:         b.Name,
		Description:  b.Description,
		Instruction:  b.Instruction,
		Seed:         b.Seed,
		CategoryID:   b.CategoryID,
		UserID:       b.UserID,
		UserName:     b.UserName,
		MessageCount: b.MessageCount,
		Messages:     messages,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// NewBotListResponse maps a slice of domain bots.
func NewBotListResponse(bots []*domain.Bot) []BotResponse {
	out := make([]BotResponse, len(bots))
	for i, b := range bots {
		out[i] = NewBotResponse(b)
	}
	return out
}

// NewCategoryListResponse maps a slice of domain categories.
func NewCategoryListResponse(categories []*domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = CategoryResponse{ID: c.PublicID, Name: c.Name}
	}
	return out
}
