package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "duck-server/services/bot-api/internal/domain/bot"
	"duck-server/services/bot-api/internal/infrastructure/auth"
	"duck-server/services/bot-api/internal/infrastructure/metrics"
	"duck-server/services/bot-api/internal/interfaces/httpserver/requests"
	"duck-server/services/bot-api/internal/interfaces/httpserver/responses"
	"duck-server/services/bot-api/internal/utils/platformerrors"
)

// BotHandler serves the bot CRUD endpoints.
type BotHandler struct {
	service domain.Service
	log     zerolog.Logger
}

// NewBotHandler creates a new bot handler.
func NewBotHandler(service domain.Service, log zerolog.Logger) *BotHandler {
	return &BotHandler{
		service: service,
		log:     log.With().Str("handler", "bot").Logger(),
	}
}

// Create handles POST /api/bot. Identity is resolved before the body is
// read, so an unauthenticated request with a malformed body still gets 401.
func (h *BotHandler) Create(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok || identity.DisplayName == "" {
		platformerrors.WriteUnauthorized(c, "Unauthorized")
		return
	}

	var req requests.BotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		platformerrors.WriteValidationError(c, "Missing Required Fields")
		return
	}

	owner := domain.Owner{ID: identity.UserID, Name: identity.DisplayName}
	created, err := h.service.Create(c.Request.Context(), owner, req.Params())
	if err != nil {
		metrics.BotMutationsTotal.WithLabelValues("create", "error").Inc()
		platformerrors.WriteError(c, err, h.log)
		return
	}

	metrics.BotMutationsTotal.WithLabelValues("create", "success").Inc()
	c.JSON(http.StatusOK, responses.NewBotResponse(created))
}

// Update handles PATCH /api/bot/:botId. All editable fields are replaced;
// partial bodies fail validation the same way create does.
func (h *BotHandler) Update(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok || identity.DisplayName == "" {
		platformerrors.WriteUnauthorized(c, "Unauthorized")
		return
	}

	botID := c.Param("botId")
	if botID == "" {
		platformerrors.WriteValidationError(c, "Bot ID is required")
		return
	}

	var req requests.BotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		platformerrors.WriteValidationError(c, "Missing Required Fields")
		return
	}

	owner := domain.Owner{ID: identity.UserID, Name: identity.DisplayName}
	updated, err := h.service.Update(c.Request.Context(), owner, botID, req.Params())
	if err != nil {
		metrics.BotMutationsTotal.WithLabelValues("update", "error").Inc()
		platformerrors.WriteError(c, err, h.log)
		return
	}

	metrics.BotMutationsTotal.WithLabelValues("update", "success").Inc()
	c.JSON(http.StatusOK, responses.NewBotResponse(updated))
}

// Delete handles DELETE /api/bot/:botId. Deleting a bot that does not
// exist, or is owned by someone else, responds 200 with a null body.
func (h *BotHandler) Delete(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		platformerrors.WriteUnauthorized(c, "Unauthorized")
		return
	}

	botID := c.Param("botId")
	if botID == "" {
		platformerrors.WriteValidationError(c, "Bot ID is required")
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), identity.UserID, botID)
	if err != nil {
		metrics.BotMutationsTotal.WithLabelValues("delete", "error").Inc()
		platformerrors.WriteError(c, err, h.log)
		return
	}

	metrics.BotMutationsTotal.WithLabelValues("delete", "success").Inc()
	if deleted == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, responses.NewBotResponse(deleted))
}

// Get handles GET /api/bot/:botId. The detail view includes the bot's
// messages and message count; it is not owner scoped.
func (h *BotHandler) Get(c *gin.Context) {
	botID := c.Param("botId")
	if botID == "" {
		platformerrors.WriteValidationError(c, "Bot ID is required")
		return
	}

	b, err := h.service.GetByPublicID(c.Request.Context(), botID)
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}

	c.JSON(http.StatusOK, responses.NewBotResponse(b))
}

// List handles GET /api/bot with optional categoryId and name filters.
func (h *BotHandler) List(c *gin.Context) {
	var req requests.ListBotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		platformerrors.WriteValidationError(c, "Invalid query parameters")
		return
	}

	filter := domain.NewFilter().WithPagination(req.Limit, req.Offset)
	if req.CategoryID != "" {
		filter = filter.WithCategoryID(req.CategoryID)
	}
	if req.Name != "" {
		filter = filter.WithName(req.Name)
	}

	bots, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}

	c.JSON(http.StatusOK, responses.NewBotListResponse(bots))
}
