package resolver_test

import (
	"context"
	"time"

	"calendar-assistant/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)    {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)    {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)   {}

// mockStore records the window it was queried with and serves events that
// fall inside it, like a well-behaved remote store.
type mockStore struct {
	events   []model.CalendarEvent
	err      error
	gotStart time.Time
	gotEnd   time.Time
}

func (m *mockStore) ListCalendars(ctx context.Context) ([]string, error) { return nil, nil }

func (m *mockStore) ListEvents(ctx context.Context, start, end time.Time, calendarName string) ([]model.CalendarEvent, error) {
	m.gotStart, m.gotEnd = start, end
	if m.err != nil {
		return nil, m.err
	}
	var out []model.CalendarEvent
	for _, ev := range m.events {
		if !ev.StartTime.Before(start) && ev.StartTime.Before(end) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *mockStore) CreateEvent(ctx context.Context, ev model.CalendarEvent) (model.CalendarEvent, error) {
	return ev, nil
}

func (m *mockStore) UpdateEvent(ctx context.Context, id string, fields model.EventFields) (model.CalendarEvent, error) {
	return model.CalendarEvent{}, nil
}

func (m *mockStore) DeleteEvent(ctx context.Context, id string) error { return nil }
