package requests

import (
	domain "duck-server/services/bot-api/internal/domain/bot"
)

// BotRequest is the single declarative validation schema for bot create
// and update. Client forms mirror these rules; changing a tag here
// changes the contract for both sides.
type BotRequest struct {
	Src         string `json:"src" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Instruction string `json:"instruction" binding:"required,min=200"`
	Seed        string `json:"seed" binding:"required,min=200"`
	CategoryID  string `json:"categoryId" binding:"required"`
}

// Params converts the request body to domain parameters.
func (r *BotRequest) Params() domain.Params {
	return domain.Params{
		Src:         r.Src,
		Name:        r.Name,
		Description: r.Description,
		Instruction: r.Instruction,
		Seed:        r.Seed,
		CategoryID:  r.CategoryID,
	}
}

// ListBotsRequest carries the optional browse filters.
type ListBotsRequest struct {
	CategoryID string `form:"categoryId"`
	Name       string `form:"name"`
	Limit      int    `form:"limit,default=20"`
	Offset     int    `form:"offset,default=0"`
}
