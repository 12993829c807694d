package handlers

// Provider aggregates the HTTP handlers for route registration.
type Provider struct {
	Bot      *BotHandler
	Category *CategoryHandler
	Upload   *UploadHandler
}

// NewProvider creates a handler provider.
func NewProvider(bot *BotHandler, category *CategoryHandler, upload *UploadHandler) *Provider {
	return &Provider{
		Bot:      bot,
		Category: category,
		Upload:   upload,
	}
}
