package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/pkg/response"
)

// mapError translates domain errors into HTTP responses. Unknown errors
// become an opaque 500 so backend details never leak to clients.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, calendar.ErrAuthFailed):
		response.ErrorWithStatus(c, http.StatusBadGateway, "calendar backend rejected our credentials", nil)
	case errors.Is(err, calendar.ErrPermissionDenied):
		response.ErrorWithStatus(c, http.StatusForbidden, "no permission for this calendar operation", nil)
	case errors.Is(err, calendar.ErrEventNotFound):
		response.NotFound(c, "event not found")
	case errors.Is(err, calendar.ErrConnection):
		response.ErrorWithStatus(c, http.StatusBadGateway, "calendar backend is unreachable", nil)
	case errors.Is(err, calendar.ErrInvalidTimeRange):
		response.ErrorWithStatus(c, http.StatusBadRequest, "end time must not be before start time", nil)
	default:
		response.InternalError(c, err)
	}
}
