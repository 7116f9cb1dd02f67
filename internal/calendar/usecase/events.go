package usecase

import (
	"context"
	"time"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/model"
)

// ListCalendars returns the available calendar names.
func (uc *implUseCase) ListCalendars(ctx context.Context) (calendar.ListCalendarsOutput, error) {
	names, err := uc.store.ListCalendars(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "ListCalendars: store failed: %v", err)
		return calendar.ListCalendarsOutput{}, err
	}
	return calendar.ListCalendarsOutput{Calendars: names}, nil
}

// ListEvents lists events in the requested window, defaulting to today
// through the next 30 days.
func (uc *implUseCase) ListEvents(ctx context.Context, input calendar.ListEventsInput) (calendar.ListEventsOutput, error) {
	start, end := uc.window(input.Start, input.End)
	if end.Before(start) {
		return calendar.ListEventsOutput{}, calendar.ErrInvalidTimeRange
	}

	events, err := uc.store.ListEvents(ctx, start, end, input.CalendarName)
	if err != nil {
		uc.l.Errorf(ctx, "ListEvents: store failed: %v", err)
		return calendar.ListEventsOutput{}, err
	}

	return calendar.ListEventsOutput{Events: events, Count: len(events)}, nil
}

// CreateEvent creates a new event. A missing end time defaults to one
// hour after the start.
func (uc *implUseCase) CreateEvent(ctx context.Context, input calendar.CreateEventInput) (calendar.CreateEventOutput, error) {
	end := input.EndTime
	if end == nil {
		e := input.StartTime.Add(time.Hour)
		end = &e
	}
	if end.Before(input.StartTime) {
		return calendar.CreateEventOutput{}, calendar.ErrInvalidTimeRange
	}

	created, err := uc.store.CreateEvent(ctx, model.CalendarEvent{
		Title:        input.Title,
		StartTime:    input.StartTime,
		EndTime:      end,
		Location:     input.Location,
		Notes:        input.Notes,
		CalendarName: input.CalendarName,
	})
	if err != nil {
		uc.l.Errorf(ctx, "CreateEvent: store failed: %v", err)
		return calendar.CreateEventOutput{}, err
	}

	uc.l.Infof(ctx, "CreateEvent: created %q at %s", created.Title, created.StartTime)
	return calendar.CreateEventOutput{Event: created}, nil
}

// UpdateEvent applies a partial update to an existing event.
func (uc *implUseCase) UpdateEvent(ctx context.Context, input calendar.UpdateEventInput) (calendar.UpdateEventOutput, error) {
	updated, err := uc.store.UpdateEvent(ctx, input.ID, input.Fields)
	if err != nil {
		uc.l.Errorf(ctx, "UpdateEvent: store failed for %s: %v", input.ID, err)
		return calendar.UpdateEventOutput{}, err
	}
	return calendar.UpdateEventOutput{Event: updated}, nil
}

// DeleteEvent removes an event by identifier.
func (uc *implUseCase) DeleteEvent(ctx context.Context, id string) error {
	if err := uc.store.DeleteEvent(ctx, id); err != nil {
		uc.l.Errorf(ctx, "DeleteEvent: store failed for %s: %v", id, err)
		return err
	}
	return nil
}

// window fills in the default list window around missing bounds.
func (uc *implUseCase) window(start, end *time.Time) (time.Time, time.Time) {
	if start == nil {
		s, e := uc.dateMath.DefaultListWindow(time.Now())
		if end != nil {
			return s, *end
		}
		return s, e
	}
	if end == nil {
		return *start, start.AddDate(0, 0, 30)
	}
	return *start, *end
}
