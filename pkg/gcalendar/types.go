package gcalendar

import "time"

// CalendarInfo is one entry from the user's calendar list.
type CalendarInfo struct {
	ID      string
	Summary string
	Primary bool
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	HtmlLink    string
	StartTime   time.Time
	EndTime     *time.Time
	AllDay      bool
	CalendarID  string
}

// CreateEventRequest is the input for creating an event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     *time.Time
	Timezone    string // e.g. "Asia/Shanghai"
}

// UpdateEventRequest is a partial update; nil fields are left unchanged.
type UpdateEventRequest struct {
	Summary     *string
	Description *string
	Location    *string
	StartTime   *time.Time
	EndTime     *time.Time
	Timezone    string
}

// ListEventsRequest is the input for listing events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
