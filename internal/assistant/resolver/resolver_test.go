package resolver_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"calendar-assistant/internal/assistant/resolver"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
)

func mustParser(t *testing.T) *datemath.Parser {
	t.Helper()
	p, err := datemath.NewParser("Asia/Shanghai")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	return p
}

func TestResolve(t *testing.T) {
	dateMath := mustParser(t)
	loc := dateMath.Location()

	nov12Evening := time.Date(2025, 11, 12, 20, 0, 0, 0, loc)
	nov15Evening := time.Date(2025, 11, 15, 20, 0, 0, 0, loc)

	t.Run("No Match Returns Empty Result", func(t *testing.T) {
		store := &mockStore{events: []model.CalendarEvent{
			{ID: "1", Title: "团队会议", StartTime: nov12Evening},
		}}
		r := resolver.New(&mockLogger{}, store, dateMath)

		res, err := r.Resolve(context.Background(), "打游戏", resolver.Hint{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Matches) != 0 {
			t.Errorf("expected no matches, got %d", len(res.Matches))
		}
	})

	t.Run("Single Match Returned", func(t *testing.T) {
		store := &mockStore{events: []model.CalendarEvent{
			{ID: "1", Title: "和张三喝咖啡", StartTime: nov12Evening},
			{ID: "2", Title: "团队会议", StartTime: nov15Evening},
		}}
		r := resolver.New(&mockLogger{}, store, dateMath)

		res, err := r.Resolve(context.Background(), "喝咖啡", resolver.Hint{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Matches) != 1 || res.Matches[0].ID != "1" {
			t.Fatalf("expected exactly event 1, got %+v", res.Matches)
		}
	})

	t.Run("Multiple Matches All Returned", func(t *testing.T) {
		store := &mockStore{events: []model.CalendarEvent{
			{ID: "1", Title: "和张三开会", StartTime: nov12Evening},
			{ID: "2", Title: "和张三喝咖啡", StartTime: nov15Evening},
		}}
		r := resolver.New(&mockLogger{}, store, dateMath)

		res, err := r.Resolve(context.Background(), "张三", resolver.Hint{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Matches) != 2 {
			t.Errorf("expected 2 ambiguous candidates, got %d", len(res.Matches))
		}
	})

	t.Run("Duplicate Title And Start Stay Separate Candidates", func(t *testing.T) {
		store := &mockStore{events: []model.CalendarEvent{
			{ID: "1", Title: "例会", StartTime: nov12Evening},
			{ID: "2", Title: "例会", StartTime: nov12Evening},
		}}
		r := resolver.New(&mockLogger{}, store, dateMath)

		res, err := r.Resolve(context.Background(), "例会", resolver.Hint{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Matches) != 2 {
			t.Errorf("expected both duplicates as candidates, got %d", len(res.Matches))
		}
	})

	t.Run("Matching Is Case Insensitive", func(t *testing.T) {
		store := &mockStore{events: []model.CalendarEvent{
			{ID: "1", Title: "Weekly Sync", StartTime: nov12Evening},
		}}
		r := resolver.New(&mockLogger{}, store, dateMath)

		res, err := r.Resolve(context.Background(), "weekly sync", resolver.Hint{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Matches) != 1 {
			t.Errorf("expected case-insensitive match, got %d", len(res.Matches))
		}
	})

	t.Run("Fragment Must Be Inside Title Not The Reverse", func(t *testing.T) {
		store := &mockStore{events: []model.CalendarEvent{
			{ID: "1", Title: "例会", StartTime: nov12Evening},
		}}
		r := resolver.New(&mockLogger{}, store, dateMath)

		res, err := r.Resolve(context.Background(), "每周例会第三次", resolver.Hint{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Matches) != 0 {
			t.Errorf("expected no match when fragment is longer than title, got %d", len(res.Matches))
		}
	})

	t.Run("Date Hint Narrows To That Day", func(t *testing.T) {
		// Two 打游戏 events on different days; the hint picks Nov 12 only.
		store := &mockStore{events: []model.CalendarEvent{
			{ID: "nov12", Title: "打游戏", StartTime: nov12Evening},
			{ID: "nov15", Title: "打游戏", StartTime: nov15Evening},
		}}
		r := resolver.New(&mockLogger{}, store, dateMath)

		hintDay := time.Date(2025, 11, 12, 0, 0, 0, 0, loc)
		res, err := r.Resolve(context.Background(), "打游戏", resolver.Hint{Date: &hintDay})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Matches) != 1 || res.Matches[0].ID != "nov12" {
			t.Fatalf("expected only the Nov 12 event, got %+v", res.Matches)
		}

		wantStart, wantEnd := dateMath.DayWindow(hintDay)
		if !store.gotStart.Equal(wantStart) || !store.gotEnd.Equal(wantEnd) {
			t.Errorf("expected day window [%s, %s), store saw [%s, %s)",
				wantStart, wantEnd, store.gotStart, store.gotEnd)
		}
	})

	t.Run("Instant Hint Narrows To Its Day", func(t *testing.T) {
		store := &mockStore{events: []model.CalendarEvent{
			{ID: "nov12", Title: "开会", StartTime: nov12Evening},
		}}
		r := resolver.New(&mockLogger{}, store, dateMath)

		instant := time.Date(2025, 11, 12, 15, 0, 0, 0, loc)
		res, err := r.Resolve(context.Background(), "开会", resolver.Hint{Instant: &instant})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Matches) != 1 {
			t.Fatalf("expected the same-day event, got %d matches", len(res.Matches))
		}

		wantStart, wantEnd := dateMath.DayWindow(instant)
		if !store.gotStart.Equal(wantStart) || !store.gotEnd.Equal(wantEnd) {
			t.Errorf("instant hint did not produce its day window")
		}
	})

	t.Run("No Hint Uses Default Search Window", func(t *testing.T) {
		store := &mockStore{}
		r := resolver.New(&mockLogger{}, store, dateMath)

		if _, err := r.Resolve(context.Background(), "anything", resolver.Hint{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := store.gotEnd.Sub(store.gotStart); got != 120*24*time.Hour {
			t.Errorf("expected 120-day default window, got %s", got)
		}
	})

	t.Run("Store Errors Propagate", func(t *testing.T) {
		wantErr := errors.New("unreachable")
		store := &mockStore{err: wantErr}
		r := resolver.New(&mockLogger{}, store, dateMath)

		if _, err := r.Resolve(context.Background(), "x", resolver.Hint{}); !errors.Is(err, wantErr) {
			t.Errorf("expected store error, got %v", err)
		}
	})
}
