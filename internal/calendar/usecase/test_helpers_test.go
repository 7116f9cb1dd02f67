package usecase_test

import (
	"context"
	"time"

	"calendar-assistant/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockStore struct {
	listEvents []model.CalendarEvent
	listErr    error
	deleteErr  error

	createCalls int
	gotCreate   model.CalendarEvent
	gotStart    time.Time
	gotEnd      time.Time
	gotUpdateID string
	gotFields   model.EventFields
}

func (m *mockStore) ListCalendars(ctx context.Context) ([]string, error) {
	return []string{"工作", "个人"}, nil
}

func (m *mockStore) ListEvents(ctx context.Context, start, end time.Time, calendarName string) ([]model.CalendarEvent, error) {
	m.gotStart, m.gotEnd = start, end
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listEvents, nil
}

func (m *mockStore) CreateEvent(ctx context.Context, event model.CalendarEvent) (model.CalendarEvent, error) {
	m.createCalls++
	m.gotCreate = event
	event.ID = "created"
	return event, nil
}

func (m *mockStore) UpdateEvent(ctx context.Context, id string, fields model.EventFields) (model.CalendarEvent, error) {
	m.gotUpdateID = id
	m.gotFields = fields
	return model.CalendarEvent{ID: id}, nil
}

func (m *mockStore) DeleteEvent(ctx context.Context, id string) error {
	return m.deleteErr
}
