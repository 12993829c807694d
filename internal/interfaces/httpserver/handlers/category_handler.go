package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "duck-server/services/bot-api/internal/domain/bot"
	"duck-server/services/bot-api/internal/interfaces/httpserver/responses"
	"duck-server/services/bot-api/internal/utils/platformerrors"
)

// CategoryHandler serves the category reference data.
type CategoryHandler struct {
	service domain.Service
	log     zerolog.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(service domain.Service, log zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log.With().Str("handler", "category").Logger(),
	}
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}
	c.JSON(http.StatusOK, responses.NewCategoryListResponse(categories))
}
