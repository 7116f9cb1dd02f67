package http

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/calendars", h.ListCalendars)

	events := rg.Group("/events")
	{
		events.GET("", h.ListEvents)
		events.POST("", h.CreateEvent)
		// Catch-all params: CalDAV event IDs are object paths and contain slashes.
		events.PUT("/*id", h.UpdateEvent)
		events.DELETE("/*id", h.DeleteEvent)
	}
}
