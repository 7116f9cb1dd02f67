package caldav

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"calendar-assistant/internal/model"
)

// parseObject converts one calendar object resource into events. An
// object normally holds a single VEVENT; recurrence overrides would add
// more, and each is surfaced as its own entry.
func parseObject(data, path, calendarName string) ([]model.CalendarEvent, error) {
	cal, err := ical.ParseCalendar(strings.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar object %s: %w", path, err)
	}

	var events []model.CalendarEvent
	for _, ve := range cal.Events() {
		ev, perr := parseVEvent(ve, path, calendarName)
		if perr != nil {
			return nil, perr
		}
		events = append(events, ev)
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("calendar object %s has no VEVENT", path)
	}
	return events, nil
}

func parseVEvent(ve *ical.VEvent, path, calendarName string) (model.CalendarEvent, error) {
	start, err := ve.GetStartAt()
	if err != nil {
		return model.CalendarEvent{}, fmt.Errorf("event %s has no parseable DTSTART: %w", path, err)
	}

	ev := model.CalendarEvent{
		ID:           path,
		StartTime:    start,
		CalendarName: calendarName,
	}

	if end, endErr := ve.GetEndAt(); endErr == nil {
		ev.EndTime = &end
	}

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		ev.Title = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		ev.Location = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		ev.Notes = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyUrl); p != nil {
		ev.URL = p.Value
	}

	// All-day events carry VALUE=DATE on DTSTART.
	if p := ve.GetProperty(ical.ComponentPropertyDtStart); p != nil {
		if vals, ok := p.ICalParameters["VALUE"]; ok && len(vals) > 0 && strings.EqualFold(vals[0], "DATE") {
			ev.AllDay = true
		}
	}

	return ev, nil
}

// buildObject serializes an event into a fresh iCalendar payload for PUT.
func buildObject(uid string, event model.CalendarEvent, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetProductId("-//calendar-assistant//EN")
	cal.SetMethod(ical.MethodPublish)

	ve := cal.AddEvent(uid)
	ve.SetDtStampTime(now)
	ve.SetCreatedTime(now)
	ve.SetModifiedAt(now)
	ve.SetStartAt(event.StartTime)
	if event.EndTime != nil {
		ve.SetEndAt(*event.EndTime)
	}
	ve.SetSummary(event.Title)
	if event.Location != "" {
		ve.SetLocation(event.Location)
	}
	if event.Notes != "" {
		ve.SetDescription(event.Notes)
	}
	if event.URL != "" {
		ve.SetURL(event.URL)
	}

	return cal.Serialize()
}

// applyFields merges a partial update onto an existing event.
func applyFields(event model.CalendarEvent, fields model.EventFields) model.CalendarEvent {
	if fields.Title != nil {
		event.Title = *fields.Title
	}
	if fields.StartTime != nil {
		event.StartTime = *fields.StartTime
	}
	if fields.EndTime != nil {
		event.EndTime = fields.EndTime
	}
	if fields.Location != nil {
		event.Location = *fields.Location
	}
	if fields.Notes != nil {
		event.Notes = *fields.Notes
	}
	return event
}
