// Package bot defines the chat persona domain entities and services.
package bot

import "time"

// Bot represents a chat persona configuration owned by a single user.
type Bot struct {
	ID          uint   `json:"-"`
	PublicID    string `json:"id"` // String ID like "bot_01h..."
	Src         string `json:"src"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Instruction string `json:"instruction"`
	Seed        string `json:"seed"`
	CategoryID  string `json:"categoryId"`

	// Ownership, set at creation and never changed afterwards.
	UserID   string `json:"userId"`
	UserName string `json:"userName"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations (loaded conditionally)
	Messages     []Message `json:"messages,omitempty"`
	MessageCount int64     `json:"message_count"`
}

// Category is a fixed classification label associated with bots.
// Categories are created by the seed command and never mutated at runtime.
type Category struct {
	ID       uint   `json:"-"`
	PublicID string `json:"id"`
	Name     string `json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MessageRole indicates who authored a chat message.
type MessageRole string

const (
	RoleUser   MessageRole = "user"
	RoleSystem MessageRole = "system"
)

// Message is a single turn in a conversation with a bot. The bot service
// only reads messages; response generation lives elsewhere.
type Message struct {
	ID       uint        `json:"-"`
	PublicID string      `json:"id"`
	BotID    string      `json:"botId"`
	Role     MessageRole `json:"role"`
	Content  string      `json:"content"`
	UserID   string      `json:"userId"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Owner identifies the acting user for owner-scoped operations.
type Owner struct {
	ID   string
	Name string
}

// Params carries the editable bot fields for create and update.
// Update is a full replacement of these fields; ownership is untouched.
type Params struct {
	Src         string
	Name        string
	Description string
	Instruction string
	Seed        string
	CategoryID  string
}
