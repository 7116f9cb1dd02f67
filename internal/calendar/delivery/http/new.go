package http

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/pkg/datemath"
	pkgLog "calendar-assistant/pkg/log"
)

// Handler is the public interface for the calendar HTTP delivery layer.
type Handler interface {
	ListCalendars(c *gin.Context)
	ListEvents(c *gin.Context)
	CreateEvent(c *gin.Context)
	UpdateEvent(c *gin.Context)
	DeleteEvent(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	uc       calendar.UseCase
	dateMath *datemath.Parser
}

// New creates a new HTTP handler for the calendar domain.
func New(l pkgLog.Logger, uc calendar.UseCase, dateMath *datemath.Parser) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		dateMath: dateMath,
	}
}
