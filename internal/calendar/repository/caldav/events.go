package caldav

import (
	"context"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/model"
)

// ListCalendars returns the display names of all calendar collections.
func (s *implStore) ListCalendars(ctx context.Context) ([]string, error) {
	cals, err := s.findCalendars(ctx, "")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(cals))
	for _, cal := range cals {
		names = append(names, cal.Name)
	}
	return names, nil
}

// ListEvents queries every matching calendar collection for events in
// [start, end). Range correctness for short spans is the compensator's
// job, not this store's.
func (s *implStore) ListEvents(ctx context.Context, start, end time.Time, calendarName string) ([]model.CalendarEvent, error) {
	cals, err := s.findCalendars(ctx, calendarName)
	if err != nil {
		return nil, err
	}

	var events []model.CalendarEvent
	for _, cal := range cals {
		objects, qErr := s.client.QueryEvents(ctx, cal.Path, start, end)
		if qErr != nil {
			return nil, classify(qErr)
		}
		for _, obj := range objects {
			parsed, pErr := parseObject(obj.Data, obj.Path, cal.Name)
			if pErr != nil {
				// A single malformed object must not sink the whole query.
				s.l.Warnf(ctx, "caldav store: skipping unparseable object %s: %v", obj.Path, pErr)
				continue
			}
			events = append(events, parsed...)
		}
	}
	return events, nil
}

// CreateEvent PUTs a freshly built calendar object into the target
// collection. The object path becomes the event's stable identifier.
func (s *implStore) CreateEvent(ctx context.Context, event model.CalendarEvent) (model.CalendarEvent, error) {
	cals, err := s.findCalendars(ctx, event.CalendarName)
	if err != nil {
		return model.CalendarEvent{}, err
	}
	if len(cals) == 0 {
		return model.CalendarEvent{}, fmt.Errorf("%w: no calendar named %q", calendar.ErrEventNotFound, event.CalendarName)
	}
	target := cals[0]

	uid := uuid.NewString()
	path := target.Path + uid + ".ics"

	if err := s.client.PutObject(ctx, path, buildObject(uid, event, time.Now())); err != nil {
		return model.CalendarEvent{}, classify(err)
	}

	event.ID = path
	event.CalendarName = target.Name
	s.l.Infof(ctx, "caldav store: created event %q at %s", event.Title, path)
	return event, nil
}

// UpdateEvent rewrites the object in place: fetch, merge fields, PUT back
// under the same UID and path.
func (s *implStore) UpdateEvent(ctx context.Context, id string, fields model.EventFields) (model.CalendarEvent, error) {
	obj, err := s.client.GetObject(ctx, id)
	if err != nil {
		return model.CalendarEvent{}, classify(err)
	}

	cal, err := ical.ParseCalendar(strings.NewReader(obj.Data))
	if err != nil {
		return model.CalendarEvent{}, fmt.Errorf("failed to parse event %s for update: %w", id, err)
	}
	vevents := cal.Events()
	if len(vevents) == 0 {
		return model.CalendarEvent{}, fmt.Errorf("%w: object %s has no VEVENT", calendar.ErrEventNotFound, id)
	}

	uid := vevents[0].Id()
	current, err := parseVEvent(vevents[0], id, calendarNameFromPath(id))
	if err != nil {
		return model.CalendarEvent{}, err
	}

	updated := applyFields(current, fields)
	if updated.EndTime != nil && updated.EndTime.Before(updated.StartTime) {
		return model.CalendarEvent{}, calendar.ErrInvalidTimeRange
	}

	if err := s.client.PutObject(ctx, id, buildObject(uid, updated, time.Now())); err != nil {
		return model.CalendarEvent{}, classify(err)
	}

	s.l.Infof(ctx, "caldav store: updated event %s", id)
	return updated, nil
}

// DeleteEvent removes the object.
func (s *implStore) DeleteEvent(ctx context.Context, id string) error {
	if err := s.client.DeleteObject(ctx, id); err != nil {
		return classify(err)
	}
	s.l.Infof(ctx, "caldav store: deleted event %s", id)
	return nil
}

// calendarNameFromPath recovers the collection segment of an object path,
// e.g. "/calendars/alice/work/abc.ics" -> "work". Display names are
// nicer, but this keeps updates from needing a second PROPFIND.
func calendarNameFromPath(path string) string {
	trimmed := strings.TrimSuffix(path, "/")
	parts := strings.Split(trimmed, "/")
	if len(parts) >= 2 {
		return parts[len(parts)-2]
	}
	return ""
}
