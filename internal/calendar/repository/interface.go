package repository

import (
	"context"
	"time"

	"calendar-assistant/internal/model"
)

// Store is the capability set expected from a remote calendar store.
// Implementations must classify failures into the sentinel errors of the
// calendar package (auth / permission / not-found / connection).
//
// ListEvents range semantics are only trustworthy after wrapping with
// NewCompensated — see compensated.go.
type Store interface {
	ListCalendars(ctx context.Context) ([]string, error)
	ListEvents(ctx context.Context, start, end time.Time, calendarName string) ([]model.CalendarEvent, error)
	CreateEvent(ctx context.Context, event model.CalendarEvent) (model.CalendarEvent, error)
	UpdateEvent(ctx context.Context, id string, fields model.EventFields) (model.CalendarEvent, error)
	DeleteEvent(ctx context.Context, id string) error
}
