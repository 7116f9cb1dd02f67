package model

import "time"

// CalendarEvent represents a remote calendar entry. The ID is opaque and
// owned by the remote store: this service never invents identifiers, it
// only reads them and passes them back for mutation or deletion.
type CalendarEvent struct {
	ID           string
	Title        string
	StartTime    time.Time
	EndTime      *time.Time // nil when the store has no DTEND; >= StartTime otherwise
	Location     string
	Notes        string
	CalendarName string
	AllDay       bool
	URL          string
}

// EventFields carries a partial update. Nil means "leave unchanged",
// not "clear the field".
type EventFields struct {
	Title        *string
	StartTime    *time.Time
	EndTime      *time.Time
	Location     *string
	Notes        *string
	CalendarName *string
}
