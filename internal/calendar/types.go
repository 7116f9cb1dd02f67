package calendar

import (
	"time"

	"calendar-assistant/internal/model"
)

// --- UseCase Inputs ---

type CreateEventInput struct {
	Title        string
	StartTime    time.Time
	EndTime      *time.Time
	Location     string
	Notes        string
	CalendarName string
}

type ListEventsInput struct {
	Start        *time.Time // nil: today 00:00
	End          *time.Time // nil: Start + 30 days
	CalendarName string
}

type UpdateEventInput struct {
	ID     string
	Fields model.EventFields
}

// --- UseCase Outputs ---

type CreateEventOutput struct {
	Event model.CalendarEvent
}

type ListEventsOutput struct {
	Events []model.CalendarEvent
	Count  int
}

type UpdateEventOutput struct {
	Event model.CalendarEvent
}

type ListCalendarsOutput struct {
	Calendars []string
}
