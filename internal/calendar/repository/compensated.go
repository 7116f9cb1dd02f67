package repository

import (
	"context"
	"time"

	"calendar-assistant/internal/model"
)

// Remote stores have been observed to return zero results for range
// queries spanning one day or less, even when matching entries exist.
// compensatedStore absorbs that defect in one place: short ranges are
// queried with an expanded end and filtered back down in memory, so every
// caller observes correct half-open [start, end) semantics regardless of
// interval length. No other component may re-implement this workaround.
type compensatedStore struct {
	Store
}

const (
	// shortRangeThreshold is the interval length at or below which the
	// underlying query misbehaves.
	shortRangeThreshold = 24 * time.Hour

	// expandedSpan is the widened interval issued in the workaround path.
	expandedSpan = 48 * time.Hour
)

// NewCompensated wraps a Store so that ListEvents behaves correctly for
// any interval length.
func NewCompensated(store Store) Store {
	return &compensatedStore{Store: store}
}

func (s *compensatedStore) ListEvents(ctx context.Context, start, end time.Time, calendarName string) ([]model.CalendarEvent, error) {
	if !needsExpansion(start, end) {
		return s.Store.ListEvents(ctx, start, end, calendarName)
	}

	events, err := s.Store.ListEvents(ctx, start, start.Add(expandedSpan), calendarName)
	if err != nil {
		return nil, err
	}
	return filterByStart(events, start, end), nil
}

// needsExpansion reports whether [start, end) falls in the defective
// short-range regime.
func needsExpansion(start, end time.Time) bool {
	return end.Sub(start) <= shortRangeThreshold
}

// filterByStart keeps events whose start time lies in the half-open
// interval [start, end).
func filterByStart(events []model.CalendarEvent, start, end time.Time) []model.CalendarEvent {
	out := make([]model.CalendarEvent, 0, len(events))
	for _, ev := range events {
		if ev.StartTime.Before(start) || !ev.StartTime.Before(end) {
			continue
		}
		out = append(out, ev)
	}
	return out
}
