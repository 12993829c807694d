package entities

import (
	"time"

	domain "duck-server/services/bot-api/internal/domain/bot"
)

// Message represents a single chat turn associated with a bot. This
// service only reads messages; the write path lives with the chat engine.
type Message struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	PublicID string `gorm:"type:varchar(50);uniqueIndex;not null"`
	BotID    string `gorm:"type:varchar(50);index;not null"`
	Role     string `gorm:"type:varchar(16);not null"`
	Content  string `gorm:"type:text;not null"`
	UserID   string `gorm:"type:varchar(64);index;not null"`
}

// TableName specifies the table name for Message.
func (Message) TableName() string {
	return "messages"
}

// EtoD converts database entity to domain model
func (m *Message) EtoD() *domain.Message {
	return &domain.Message{
		ID:        m.ID,
		PublicID:  m.PublicID,
		BotID:     m.BotID,
		Role:      domain.MessageRole(m.Role),
		Content:   m.Content,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
