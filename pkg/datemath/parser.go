package datemath

import (
	"fmt"
	"time"
)

// Layouts accepted at the boundary, tried in order. The LLM is instructed
// to emit local time without an offset, but direct API callers usually
// send full RFC3339, so both are accepted.
const (
	layoutNaiveDateTime = "2006-01-02T15:04:05"
	layoutDate          = "2006-01-02"
)

// Parser converts textual dates and datetimes into zone-aware time.Time
// values and computes the search windows used across the service.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string,
// e.g. "Asia/Shanghai".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDateTime parses a datetime string. RFC3339 is tried first; a naive
// "2006-01-02T15:04:05" value is interpreted in the parser's timezone; a
// bare date resolves to midnight of that day.
func (p *Parser) ParseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(layoutNaiveDateTime, s, p.location); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(layoutDate, s, p.location); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unparseable datetime %q", s)
}

// ParseDate parses a bare date ("2006-01-02") or any accepted datetime,
// normalized to the start of that day.
func (p *Parser) ParseDate(s string) (time.Time, error) {
	t, err := p.ParseDateTime(s)
	if err != nil {
		return time.Time{}, err
	}
	return p.StartOfDay(t), nil
}

// StartOfDay returns midnight at the start of the given day in the
// parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// DayWindow returns the half-open interval [00:00, next day 00:00)
// covering the day that contains t.
func (p *Parser) DayWindow(t time.Time) (time.Time, time.Time) {
	start := p.StartOfDay(t)
	return start, start.AddDate(0, 0, 1)
}

// DefaultSearchWindow is the window used when resolving an event
// reference with no time hint: a trailing 30 days plus a leading 90 days
// around now. Wide enough to catch most user intents without walking the
// whole calendar.
func (p *Parser) DefaultSearchWindow(now time.Time) (time.Time, time.Time) {
	now = now.In(p.location)
	return now.AddDate(0, 0, -30), now.AddDate(0, 0, 90)
}

// DefaultListWindow is the window used for list queries without explicit
// bounds: today's midnight through the next 30 days.
func (p *Parser) DefaultListWindow(now time.Time) (time.Time, time.Time) {
	start := p.StartOfDay(now)
	return start, start.AddDate(0, 0, 30)
}
