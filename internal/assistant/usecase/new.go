package usecase

import (
	"context"
	"time"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/assistant/resolver"
	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/model"
	"calendar-assistant/internal/session"
	"calendar-assistant/pkg/datemath"
	pkgLog "calendar-assistant/pkg/log"
)

// Interpreter is what the executor needs from the language layer.
type Interpreter interface {
	Interpret(ctx context.Context, userText string, now time.Time, history []session.Message, calendars []string) (assistant.ParsedCommand, error)
	SummarizeEvents(ctx context.Context, events []model.CalendarEvent) string
}

// Resolver is what the executor needs from entity resolution.
type Resolver interface {
	Resolve(ctx context.Context, fragment string, hint resolver.Hint) (resolver.MatchResult, error)
}

type implUseCase struct {
	l            pkgLog.Logger
	interp       Interpreter
	resolve      Resolver
	calendars    calendar.UseCase
	sessions     *session.Store
	dateMath     *datemath.Parser
	contextTurns int
	nowFn        func() time.Time
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New wires the executor. contextTurns bounds how much history is sent to
// the language model per interpretation.
func New(l pkgLog.Logger, interp Interpreter, resolve Resolver, calendars calendar.UseCase, sessions *session.Store, dateMath *datemath.Parser, contextTurns int) *implUseCase {
	if contextTurns <= 0 {
		contextTurns = session.DefaultContextTurns
	}
	return &implUseCase{
		l:            l,
		interp:       interp,
		resolve:      resolve,
		calendars:    calendars,
		sessions:     sessions,
		dateMath:     dateMath,
		contextTurns: contextTurns,
		nowFn:        time.Now,
	}
}
