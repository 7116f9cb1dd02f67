package http

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The
// execute-command path carries the per-session rate limit: each call
// costs a language-model round trip.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/execute-command", mw.RateLimit(), h.ExecuteCommand)
	rg.GET("/history", h.History)
	rg.DELETE("/history", h.ClearHistory)
}
