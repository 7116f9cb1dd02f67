package resolver

import (
	"context"
	"strings"
	"time"

	"calendar-assistant/internal/calendar/repository"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
	pkgLog "calendar-assistant/pkg/log"
)

// Hint narrows the search window. At most one field is set; both nil
// means no time information was extracted from the user's text.
type Hint struct {
	Instant *time.Time // a concrete moment, narrows to its calendar day
	Date    *time.Time // a calendar day
}

// MatchResult carries the candidate events. Zero, one, or many matches
// are all valid outcomes; the caller decides what each cardinality means.
type MatchResult struct {
	Matches []model.CalendarEvent
}

// Resolver maps a title fragment plus an optional time hint onto concrete
// remote events. It only reads from the store.
type Resolver struct {
	l        pkgLog.Logger
	store    repository.Store
	dateMath *datemath.Parser
	nowFn    func() time.Time
}

// New creates a resolver over the given store. The store should already
// carry the range-query compensation so one-day hint windows see evening
// events too.
func New(l pkgLog.Logger, store repository.Store, dateMath *datemath.Parser) *Resolver {
	return &Resolver{
		l:        l,
		store:    store,
		dateMath: dateMath,
		nowFn:    time.Now,
	}
}

// Resolve finds events whose title contains the fragment, restricted to
// the hinted day or, without a hint, to the default window around now.
// Matching is case-insensitive substring containment of the fragment
// within the title. Events with identical title and start are returned
// as separate candidates.
func (r *Resolver) Resolve(ctx context.Context, fragment string, hint Hint) (MatchResult, error) {
	start, end := r.window(hint)

	events, err := r.store.ListEvents(ctx, start, end, "")
	if err != nil {
		return MatchResult{}, err
	}

	needle := strings.ToLower(fragment)
	var matches []model.CalendarEvent
	for _, ev := range events {
		if strings.Contains(strings.ToLower(ev.Title), needle) {
			matches = append(matches, ev)
		}
	}

	r.l.Debugf(ctx, "internal.assistant.resolver.Resolve: fragment=%q window=[%s, %s) matches=%d",
		fragment, start.Format(time.RFC3339), end.Format(time.RFC3339), len(matches))

	return MatchResult{Matches: matches}, nil
}

func (r *Resolver) window(hint Hint) (time.Time, time.Time) {
	switch {
	case hint.Instant != nil:
		return r.dateMath.DayWindow(*hint.Instant)
	case hint.Date != nil:
		return r.dateMath.DayWindow(*hint.Date)
	default:
		return r.dateMath.DefaultSearchWindow(r.nowFn())
	}
}
