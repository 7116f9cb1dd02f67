package usecase_test

import (
	"context"
	"testing"
	"time"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/assistant/resolver"
	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/model"
	"calendar-assistant/internal/session"
	"calendar-assistant/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockInterpreter plays back a canned command or error.
type mockInterpreter struct {
	cmd        assistant.ParsedCommand
	err        error
	summary    string
	gotText    string
	gotHistory []session.Message
}

func (m *mockInterpreter) Interpret(ctx context.Context, userText string, now time.Time, history []session.Message, calendars []string) (assistant.ParsedCommand, error) {
	m.gotText = userText
	m.gotHistory = history
	return m.cmd, m.err
}

func (m *mockInterpreter) SummarizeEvents(ctx context.Context, events []model.CalendarEvent) string {
	if m.summary != "" {
		return m.summary
	}
	return "summary"
}

// mockResolver records the resolution request and plays back matches.
type mockResolver struct {
	matches     []model.CalendarEvent
	err         error
	called      bool
	gotFragment string
	gotHint     resolver.Hint
}

func (m *mockResolver) Resolve(ctx context.Context, fragment string, hint resolver.Hint) (resolver.MatchResult, error) {
	m.called = true
	m.gotFragment = fragment
	m.gotHint = hint
	return resolver.MatchResult{Matches: m.matches}, m.err
}

// mockCalendarUC counts calls so tests can assert what was (not) executed.
type mockCalendarUC struct {
	calendarNames []string

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	listEvents []model.CalendarEvent
	listErr    error
	createErr  error
	updateErr  error
	deleteErr  error

	gotCreate   calendar.CreateEventInput
	gotList     calendar.ListEventsInput
	gotUpdate   calendar.UpdateEventInput
	gotDeleteID string
}

func (m *mockCalendarUC) ListCalendars(ctx context.Context) (calendar.ListCalendarsOutput, error) {
	return calendar.ListCalendarsOutput{Calendars: m.calendarNames}, nil
}

func (m *mockCalendarUC) ListEvents(ctx context.Context, input calendar.ListEventsInput) (calendar.ListEventsOutput, error) {
	m.listCalls++
	m.gotList = input
	if m.listErr != nil {
		return calendar.ListEventsOutput{}, m.listErr
	}
	return calendar.ListEventsOutput{Events: m.listEvents, Count: len(m.listEvents)}, nil
}

func (m *mockCalendarUC) CreateEvent(ctx context.Context, input calendar.CreateEventInput) (calendar.CreateEventOutput, error) {
	m.createCalls++
	m.gotCreate = input
	if m.createErr != nil {
		return calendar.CreateEventOutput{}, m.createErr
	}
	return calendar.CreateEventOutput{Event: model.CalendarEvent{
		ID:        "created-id",
		Title:     input.Title,
		StartTime: input.StartTime,
	}}, nil
}

func (m *mockCalendarUC) UpdateEvent(ctx context.Context, input calendar.UpdateEventInput) (calendar.UpdateEventOutput, error) {
	m.updateCalls++
	m.gotUpdate = input
	if m.updateErr != nil {
		return calendar.UpdateEventOutput{}, m.updateErr
	}
	title := "updated"
	if input.Fields.Title != nil {
		title = *input.Fields.Title
	}
	return calendar.UpdateEventOutput{Event: model.CalendarEvent{ID: input.ID, Title: title}}, nil
}

func (m *mockCalendarUC) DeleteEvent(ctx context.Context, id string) error {
	m.deleteCalls++
	m.gotDeleteID = id
	return m.deleteErr
}

func (m *mockCalendarUC) mutationCalls() int {
	return m.listCalls + m.createCalls + m.updateCalls + m.deleteCalls
}

func testParser(t *testing.T) *datemath.Parser {
	t.Helper()
	p, err := datemath.NewParser("Asia/Shanghai")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	return p
}
