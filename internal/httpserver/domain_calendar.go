package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/calendar"
	calendarHTTP "calendar-assistant/internal/calendar/delivery/http"
	calendarUC "calendar-assistant/internal/calendar/usecase"
	"calendar-assistant/internal/middleware"
)

// setupCalendarDomain wires the direct CRUD surface. The use case is
// returned so the assistant domain can execute through the same layer.
func (srv *HTTPServer) setupCalendarDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) calendar.UseCase {
	uc := calendarUC.New(srv.l, srv.store, srv.dateMath)
	h := calendarHTTP.New(srv.l, uc, srv.dateMath)
	calendarHTTP.RegisterRoutes(api.Group("/calendar"), h, mw)

	srv.l.Infof(ctx, "Calendar domain registered")
	return uc
}
