package caldav

import (
	"encoding/xml"
	"fmt"
	"time"
)

// Config holds CalDAV client configuration.
type Config struct {
	// ServerURL points at the calendar home collection, e.g.
	// https://dav.example.com/calendars/alice/
	ServerURL string
	Username  string
	Password  string
	Timeout   time.Duration
}

// Calendar is one calendar collection on the server.
type Calendar struct {
	Name string // displayname, falls back to the last path segment
	Path string // absolute path on the server, always slash-terminated
}

// Object is a single calendar object resource (one .ics file).
type Object struct {
	Path string // absolute path; doubles as the event identifier upstream
	ETag string
	Data string // raw iCalendar payload
}

// StatusError is returned when the server answers with a non-success
// status. Callers classify auth/permission/not-found from StatusCode.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("caldav: server returned %d: %s", e.StatusCode, e.Body)
}

// --- WebDAV multistatus wire types ---

type multistatus struct {
	XMLName   xml.Name      `xml:"DAV: multistatus"`
	Responses []davResponse `xml:"response"`
}

type davResponse struct {
	Href      string     `xml:"href"`
	Propstats []propstat `xml:"propstat"`
}

type propstat struct {
	Prop   prop   `xml:"prop"`
	Status string `xml:"status"`
}

type prop struct {
	DisplayName  *string       `xml:"displayname"`
	ResourceType *resourceType `xml:"resourcetype"`
	ETag         string        `xml:"getetag"`
	CalendarData string        `xml:"urn:ietf:params:xml:ns:caldav calendar-data"`
}

type resourceType struct {
	Calendar *struct{} `xml:"urn:ietf:params:xml:ns:caldav calendar"`
}
