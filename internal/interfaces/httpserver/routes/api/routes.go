package api

import (
	"github.com/gin-gonic/gin"

	"duck-server/services/bot-api/internal/interfaces/httpserver/handlers"
)

// Routes registers the /api route group.
type Routes struct {
	handlers *handlers.Provider
}

// NewRoutes creates the API route registrar.
func NewRoutes(provider *handlers.Provider) *Routes {
	return &Routes{handlers: provider}
}

// Register attaches the API routes to the router.
func (r *Routes) Register(router gin.IRouter) {
	group := router.Group("/api")

	group.POST("/bot", r.handlers.Bot.Create)
	group.GET("/bot", r.handlers.Bot.List)
	group.GET("/bot/:botId", r.handlers.Bot.Get)
	group.PATCH("/bot/:botId", r.handlers.Bot.Update)
	group.DELETE("/bot/:botId", r.handlers.Bot.Delete)

	group.GET("/categories", r.handlers.Category.List)
	group.POST("/upload", r.handlers.Upload.Upload)
}
