package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"calendar-assistant/internal/model"
)

// mockStore implements Store with func fields for the methods under test.
type mockStore struct {
	listEventsFunc func(ctx context.Context, start, end time.Time, calendarName string) ([]model.CalendarEvent, error)
}

func (m *mockStore) ListCalendars(ctx context.Context) ([]string, error) { return nil, nil }
func (m *mockStore) ListEvents(ctx context.Context, start, end time.Time, calendarName string) ([]model.CalendarEvent, error) {
	return m.listEventsFunc(ctx, start, end, calendarName)
}
func (m *mockStore) CreateEvent(ctx context.Context, ev model.CalendarEvent) (model.CalendarEvent, error) {
	return ev, nil
}
func (m *mockStore) UpdateEvent(ctx context.Context, id string, fields model.EventFields) (model.CalendarEvent, error) {
	return model.CalendarEvent{}, nil
}
func (m *mockStore) DeleteEvent(ctx context.Context, id string) error { return nil }

func eventAt(title string, start time.Time) model.CalendarEvent {
	return model.CalendarEvent{ID: title, Title: title, StartTime: start}
}

func TestCompensatedListEvents(t *testing.T) {
	day := time.Date(2025, 11, 12, 0, 0, 0, 0, time.UTC)
	nextDay := day.AddDate(0, 0, 1)

	t.Run("One Day Window Is Expanded Then Filtered", func(t *testing.T) {
		var gotStart, gotEnd time.Time
		inner := &mockStore{
			listEventsFunc: func(ctx context.Context, start, end time.Time, calendarName string) ([]model.CalendarEvent, error) {
				gotStart, gotEnd = start, end
				return []model.CalendarEvent{
					eventAt("morning standup", day.Add(9*time.Hour)),
					eventAt("dinner", day.Add(20*time.Hour)),
					eventAt("next-day review", day.Add(34*time.Hour)),
				}, nil
			},
		}

		events, err := NewCompensated(inner).ListEvents(context.Background(), day, nextDay, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !gotStart.Equal(day) || !gotEnd.Equal(day.Add(48*time.Hour)) {
			t.Errorf("expected expanded query [%s, %s), got [%s, %s)",
				day, day.Add(48*time.Hour), gotStart, gotEnd)
		}

		if len(events) != 2 {
			t.Fatalf("expected 2 events within the requested day, got %d", len(events))
		}
		for _, ev := range events {
			if ev.StartTime.Before(day) || !ev.StartTime.Before(nextDay) {
				t.Errorf("event %q outside requested window: %s", ev.Title, ev.StartTime)
			}
		}
	})

	t.Run("Evening Event Survives The Workaround", func(t *testing.T) {
		inner := &mockStore{
			listEventsFunc: func(ctx context.Context, start, end time.Time, calendarName string) ([]model.CalendarEvent, error) {
				return []model.CalendarEvent{eventAt("打游戏", day.Add(20*time.Hour))}, nil
			},
		}

		events, err := NewCompensated(inner).ListEvents(context.Background(), day, nextDay, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 1 || events[0].Title != "打游戏" {
			t.Fatalf("expected the 20:00 event to be found, got %+v", events)
		}
	})

	t.Run("Wide Window Passes Through Unchanged", func(t *testing.T) {
		wideEnd := day.AddDate(0, 0, 30)
		var gotStart, gotEnd time.Time
		inner := &mockStore{
			listEventsFunc: func(ctx context.Context, start, end time.Time, calendarName string) ([]model.CalendarEvent, error) {
				gotStart, gotEnd = start, end
				return []model.CalendarEvent{eventAt("anything", day.Add(time.Hour))}, nil
			},
		}

		events, err := NewCompensated(inner).ListEvents(context.Background(), day, wideEnd, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !gotStart.Equal(day) || !gotEnd.Equal(wideEnd) {
			t.Errorf("wide window was modified: got [%s, %s)", gotStart, gotEnd)
		}
		if len(events) != 1 {
			t.Errorf("expected passthrough result, got %d events", len(events))
		}
	})

	t.Run("Store Errors Propagate", func(t *testing.T) {
		wantErr := errors.New("connection refused")
		inner := &mockStore{
			listEventsFunc: func(ctx context.Context, start, end time.Time, calendarName string) ([]model.CalendarEvent, error) {
				return nil, wantErr
			},
		}

		if _, err := NewCompensated(inner).ListEvents(context.Background(), day, nextDay, ""); !errors.Is(err, wantErr) {
			t.Errorf("expected store error, got %v", err)
		}
	})
}

func TestNeedsExpansion(t *testing.T) {
	base := time.Date(2025, 11, 12, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		span time.Duration
		want bool
	}{
		{"One Hour", time.Hour, true},
		{"Exactly One Day", 24 * time.Hour, true},
		{"Just Over One Day", 24*time.Hour + time.Second, false},
		{"Thirty Days", 30 * 24 * time.Hour, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := needsExpansion(base, base.Add(tc.span)); got != tc.want {
				t.Errorf("needsExpansion(%s) = %v, want %v", tc.span, got, tc.want)
			}
		})
	}
}

func TestFilterByStart(t *testing.T) {
	day := time.Date(2025, 11, 12, 0, 0, 0, 0, time.UTC)
	events := []model.CalendarEvent{
		eventAt("before", day.Add(-time.Minute)),
		eventAt("at start", day),
		eventAt("inside", day.Add(12*time.Hour)),
		eventAt("at end", day.AddDate(0, 0, 1)),
	}

	got := filterByStart(events, day, day.AddDate(0, 0, 1))
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].Title != "at start" || got[1].Title != "inside" {
		t.Errorf("half-open interval semantics broken: %+v", got)
	}
}
