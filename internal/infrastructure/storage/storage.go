package storage

import (
	"context"
	"io"
)

// Storage persists avatar images and yields stable public URLs that the
// API stores verbatim as a bot's src field.
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	PublicURL(key string) string
}
