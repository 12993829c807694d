package entities

import (
	"time"

	domain "duck-server/services/bot-api/internal/domain/bot"
)

// Category represents the database schema for the fixed category labels.
// Name intentionally carries no unique constraint; the seed command is the
// only writer and duplicates are a known hazard of re-running it.
type Category struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	PublicID string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Name     string `gorm:"type:varchar(100);not null"`
}

// TableName specifies the table name for Category.
func (Category) TableName() string {
	return "categories"
}

// EtoD converts database entity to domain model
func (c *Category) EtoD() *domain.Category {
	return &domain.Category{
		ID:        c.ID,
		PublicID:  c.PublicID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// NewSchemaCategory converts a domain category to its database entity.
func NewSchemaCategory(c *domain.Category) *Category {
	return &Category{
		ID:       c.ID,
		PublicID: c.PublicID,
		Name:     c.Name,
	}
}
