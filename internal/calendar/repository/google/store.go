package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/googleapi"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/gcalendar"
	pkgLog "calendar-assistant/pkg/log"
)

type implStore struct {
	l          pkgLog.Logger
	client     *gcalendar.Client
	calendarID string
	timezone   string
}

// New creates a Google-Calendar-backed Store. calendarID may be empty,
// meaning the account's primary calendar.
func New(l pkgLog.Logger, client *gcalendar.Client, calendarID, timezone string) *implStore {
	return &implStore{
		l:          l,
		client:     client,
		calendarID: calendarID,
		timezone:   timezone,
	}
}

func (s *implStore) ListCalendars(ctx context.Context) ([]string, error) {
	infos, err := s.client.ListCalendars(ctx)
	if err != nil {
		return nil, classify(err)
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Summary)
	}
	return names, nil
}

func (s *implStore) ListEvents(ctx context.Context, start, end time.Time, calendarName string) ([]model.CalendarEvent, error) {
	calendarID, err := s.resolveCalendarID(ctx, calendarName)
	if err != nil {
		return nil, err
	}

	items, err := s.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    start,
		TimeMax:    end,
	})
	if err != nil {
		return nil, classify(err)
	}

	events := make([]model.CalendarEvent, 0, len(items))
	for _, item := range items {
		events = append(events, fromGoogleEvent(item, calendarName))
	}
	return events, nil
}

func (s *implStore) CreateEvent(ctx context.Context, event model.CalendarEvent) (model.CalendarEvent, error) {
	calendarID, err := s.resolveCalendarID(ctx, event.CalendarName)
	if err != nil {
		return model.CalendarEvent{}, err
	}

	created, err := s.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  calendarID,
		Summary:     event.Title,
		Description: event.Notes,
		Location:    event.Location,
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
		Timezone:    s.timezone,
	})
	if err != nil {
		return model.CalendarEvent{}, classify(err)
	}

	s.l.Infof(ctx, "google store: created event %q (%s)", created.Summary, created.ID)
	return fromGoogleEvent(*created, event.CalendarName), nil
}

func (s *implStore) UpdateEvent(ctx context.Context, id string, fields model.EventFields) (model.CalendarEvent, error) {
	updated, err := s.client.UpdateEvent(ctx, s.calendarID, id, gcalendar.UpdateEventRequest{
		Summary:     fields.Title,
		Description: fields.Notes,
		Location:    fields.Location,
		StartTime:   fields.StartTime,
		EndTime:     fields.EndTime,
		Timezone:    s.timezone,
	})
	if err != nil {
		return model.CalendarEvent{}, classify(err)
	}

	s.l.Infof(ctx, "google store: updated event %s", id)
	return fromGoogleEvent(*updated, ""), nil
}

func (s *implStore) DeleteEvent(ctx context.Context, id string) error {
	if err := s.client.DeleteEvent(ctx, s.calendarID, id); err != nil {
		return classify(err)
	}
	s.l.Infof(ctx, "google store: deleted event %s", id)
	return nil
}

// resolveCalendarID maps a user-facing calendar name to its ID. Empty
// name means the configured (or primary) calendar.
func (s *implStore) resolveCalendarID(ctx context.Context, name string) (string, error) {
	if name == "" {
		return s.calendarID, nil
	}
	infos, err := s.client.ListCalendars(ctx)
	if err != nil {
		return "", classify(err)
	}
	for _, info := range infos {
		if info.Summary == name {
			return info.ID, nil
		}
	}
	return "", fmt.Errorf("%w: no calendar named %q", calendar.ErrEventNotFound, name)
}

func classify(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %v", calendar.ErrAuthFailed, err)
		case http.StatusForbidden:
			return fmt.Errorf("%w: %v", calendar.ErrPermissionDenied, err)
		case http.StatusNotFound, http.StatusGone:
			return fmt.Errorf("%w: %v", calendar.ErrEventNotFound, err)
		}
	}
	return fmt.Errorf("%w: %v", calendar.ErrConnection, err)
}

func fromGoogleEvent(item gcalendar.Event, calendarName string) model.CalendarEvent {
	return model.CalendarEvent{
		ID:           item.ID,
		Title:        item.Summary,
		StartTime:    item.StartTime,
		EndTime:      item.EndTime,
		Location:     item.Location,
		Notes:        item.Description,
		CalendarName: calendarName,
		AllDay:       item.AllDay,
		URL:          item.HtmlLink,
	}
}
