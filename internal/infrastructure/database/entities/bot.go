package entities

import (
	"time"

	domain "duck-server/services/bot-api/internal/domain/bot"
)

// Bot represents the database schema for chat personas. CategoryID
// references categories.public_id so the store enforces referential
// integrity on the opaque identifier the API exchanges with clients.
type Bot struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	PublicID    string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Src         string `gorm:"type:text;not null"`
	Name        string `gorm:"type:varchar(128);index;not null"`
	Description string `gorm:"type:text;not null"`
	Instruction string `gorm:"type:text;not null"`
	Seed        string `gorm:"type:text;not null"`

	UserID   string `gorm:"type:varchar(64);index:idx_bot_user;not null"`
	UserName string `gorm:"type:varchar(128);not null"`

	CategoryID string   `gorm:"type:varchar(50);index;not null"`
	Category   Category `gorm:"foreignKey:CategoryID;references:PublicID"`

	Messages []Message `gorm:"foreignKey:BotID;references:PublicID"`
}

// TableName specifies the table name for Bot.
func (Bot) TableName() string {
	return "bots"
}

// EtoD converts database entity to domain model
func (b *Bot) EtoD() *domain.Bot {
	messages := make([]domain.Message, len(b.Messages))
	for i := range b.Messages {
		messages[i] = *b.Messages[i].EtoD()
	}

	return &domain.Bot{
		ID:           b.ID,
		PublicID:     b.PublicID,
		Src:          b.Src,
		Name:         b.Name,
		Description:  b.Description,
		Instruction:  b.Instruction,
		Seed:         b.Seed,
		CategoryID:   b.CategoryID,
		UserID:       b.UserID,
		UserName:     b.UserName,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
		Messages:     messages,
		MessageCount: int64(len(b.Messages)),
	}
}

// NewSchemaBot converts a domain bot to its database entity.
func NewSchemaBot(b *domain.Bot) *Bot {
	return &Bot{
		ID:          b.ID,
		PublicID:    b.PublicID,
		Src:         b.Src,
		Name:        b.Name,
		Description: b.Description,
		Instruction: b.Instruction,
		Seed:        b.Seed,
		UserID:      b.UserID,
		UserName:    b.UserName,
		CategoryID:  b.CategoryID,
	}
}
