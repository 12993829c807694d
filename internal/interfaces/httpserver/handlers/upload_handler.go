package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"duck-server/services/bot-api/internal/config"
	"duck-server/services/bot-api/internal/infrastructure/auth"
	"duck-server/services/bot-api/internal/infrastructure/metrics"
	"duck-server/services/bot-api/internal/infrastructure/storage"
	"duck-server/services/bot-api/internal/interfaces/httpserver/responses"
	"duck-server/services/bot-api/internal/utils/platformerrors"
)

// Image types accepted for bot avatars. Detection is content based; the
// client supplied filename and Content-Type are ignored.
var allowedAvatarTypes = map[string]string{
	"image/jpeg":    "jpg",
	"image/png":     "png",
	"image/gif":     "gif",
	"image/webp":    "webp",
	"image/svg+xml": "svg",
}

// UploadHandler serves avatar image uploads.
type UploadHandler struct {
	cfg     *config.Config
	storage storage.Storage
	log     zerolog.Logger
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(cfg *config.Config, backend storage.Storage, log zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		cfg:     cfg,
		storage: backend,
		log:     log.With().Str("handler", "upload").Logger(),
	}
}

// Upload handles POST /api/upload. It accepts a single multipart "file"
// part, stores it under a fresh key, and returns the stable public URL.
func (h *UploadHandler) Upload(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		platformerrors.WriteUnauthorized(c, "Unauthorized")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		platformerrors.WriteValidationError(c, "file is required")
		return
	}
	if fileHeader.Size > h.cfg.MaxAvatarBytes {
		platformerrors.WriteValidationError(c, fmt.Sprintf("file exceeds the %d byte limit", h.cfg.MaxAvatarBytes))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		platformerrors.WriteInternalError(c, "failed to read upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.cfg.MaxAvatarBytes+1))
	if err != nil {
		platformerrors.WriteInternalError(c, "failed to read upload")
		return
	}
	if int64(len(data)) > h.cfg.MaxAvatarBytes {
		platformerrors.WriteValidationError(c, fmt.Sprintf("file exceeds the %d byte limit", h.cfg.MaxAvatarBytes))
		return
	}

	detected := mimetype.Detect(data)
	ext, allowed := allowedAvatarTypes[detected.String()]
	if !allowed {
		platformerrors.WriteValidationError(c, fmt.Sprintf("unsupported file type %q; avatars must be images", detected.String()))
		return
	}

	key := fmt.Sprintf("avatars/%s.%s", uuid.NewString(), ext)
	if err := h.storage.Upload(c.Request.Context(), key, bytes.NewReader(data), int64(len(data)), detected.String()); err != nil {
		h.log.Error().Err(err).Str("key", key).Str("user_id", identity.UserID).Msg("avatar upload failed")
		platformerrors.WriteInternalError(c, "failed to store upload")
		return
	}

	metrics.AvatarUploadBytes.Observe(float64(len(data)))
	h.log.Info().
		Str("key", key).
		Str("user_id", identity.UserID).
		Str("content_type", detected.String()).
		Int("bytes", len(data)).
		Msg("avatar uploaded")

	c.JSON(http.StatusOK, responses.UploadResponse{URL: h.storage.PublicURL(key)})
}
