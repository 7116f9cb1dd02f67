package interpreter

import (
	"context"
	"time"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/model"
	"calendar-assistant/internal/session"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/deepseek"
	pkgLog "calendar-assistant/pkg/log"
)

// Interpreter turns one user utterance into a ParsedCommand.
type Interpreter interface {
	Interpret(ctx context.Context, userText string, now time.Time, history []session.Message, calendars []string) (assistant.ParsedCommand, error)
	SummarizeEvents(ctx context.Context, events []model.CalendarEvent) string
}

type implInterpreter struct {
	l        pkgLog.Logger
	llm      deepseek.IDeepSeek
	dateMath *datemath.Parser
}

var _ Interpreter = (*implInterpreter)(nil)

// New creates an interpreter backed by the given language model client.
func New(l pkgLog.Logger, llm deepseek.IDeepSeek, dateMath *datemath.Parser) *implInterpreter {
	return &implInterpreter{
		l:        l,
		llm:      llm,
		dateMath: dateMath,
	}
}
