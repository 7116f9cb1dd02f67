package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/assistant/delivery/http"
	"calendar-assistant/internal/assistant/interpreter"
	"calendar-assistant/internal/assistant/resolver"
	"calendar-assistant/internal/assistant/usecase"
	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/middleware"
)

// setupAssistantDomain wires the natural-language pipeline on top of the
// calendar use case: interpreter → resolver → executor → delivery.
func (srv *HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, calendarUC calendar.UseCase) {
	interp := interpreter.New(srv.l, srv.llm, srv.dateMath)
	res := resolver.New(srv.l, srv.store, srv.dateMath)
	uc := usecase.New(srv.l, interp, res, calendarUC, srv.sessions, srv.dateMath, srv.cfg.Session.ContextTurns)
	h := http.New(srv.l, uc)
	http.RegisterRoutes(api.Group("/assistant"), h, mw)

	srv.l.Infof(ctx, "Assistant domain registered")
}
