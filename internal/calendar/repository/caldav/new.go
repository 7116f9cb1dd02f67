package caldav

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"calendar-assistant/internal/calendar"
	pkgCaldav "calendar-assistant/pkg/caldav"
	pkgLog "calendar-assistant/pkg/log"
)

type implStore struct {
	l      pkgLog.Logger
	client *pkgCaldav.Client

	// calendar discovery is cached after the first successful PROPFIND;
	// calendar collections change rarely compared to events.
	mu        sync.Mutex
	calendars []pkgCaldav.Calendar
}

// New creates a CalDAV-backed Store.
func New(l pkgLog.Logger, client *pkgCaldav.Client) *implStore {
	return &implStore{
		l:      l,
		client: client,
	}
}

// classify maps transport-level failures onto the calendar domain's
// sentinel errors so upper layers can tell permission from connectivity.
func classify(err error) error {
	var statusErr *pkgCaldav.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %v", calendar.ErrAuthFailed, err)
		case http.StatusForbidden:
			return fmt.Errorf("%w: %v", calendar.ErrPermissionDenied, err)
		case http.StatusNotFound, http.StatusGone:
			return fmt.Errorf("%w: %v", calendar.ErrEventNotFound, err)
		}
		return fmt.Errorf("%w: %v", calendar.ErrConnection, err)
	}
	return fmt.Errorf("%w: %v", calendar.ErrConnection, err)
}

// findCalendars returns the cached calendar collections, optionally
// narrowed to one display name (case-insensitive).
func (s *implStore) findCalendars(ctx context.Context, name string) ([]pkgCaldav.Calendar, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.calendars == nil {
		cals, err := s.client.ListCalendars(ctx)
		if err != nil {
			return nil, classify(err)
		}
		s.calendars = cals
	}

	if name == "" {
		return s.calendars, nil
	}

	for _, cal := range s.calendars {
		if strings.EqualFold(cal.Name, name) {
			return []pkgCaldav.Calendar{cal}, nil
		}
	}
	return nil, nil
}
