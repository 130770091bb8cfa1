package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shpemaes-utep/chapterapp/internal"
	"github.com/shpemaes-utep/chapterapp/internal/feed"
)

type fakeSource struct {
	raws []internal.RawEvent
	err  error
}

func (f *fakeSource) Events(context.Context) ([]internal.RawEvent, error) {
	return f.raws, f.err
}

func newTestFeed(src *fakeSource, now time.Time) *feed.Feed {
	f := feed.New(src, feed.NewNormalizer(time.UTC))
	f.Now = func() time.Time { return now }
	return f
}

func timedEvent(id, start string) internal.RawEvent {
	return internal.RawEvent{ID: id, Summary: id, Start: &internal.RawTime{DateTime: start}}
}

func TestCalendarLoad(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	f := newTestFeed(&fakeSource{raws: []internal.RawEvent{
		timedEvent("up", "2026-01-20T18:00:00Z"),
		timedEvent("gone", "2026-01-05T18:00:00Z"),
	}}, now)

	v := NewCalendar(f)
	v.load(context.Background())

	state := v.State()
	if state.Loading || state.Err != nil {
		t.Fatalf("state = %+v, want loaded without error", state)
	}
	if len(state.Sections) != 1 || len(state.Sections[0].Items) != 1 {
		t.Fatalf("sections = %+v, want one section with the upcoming event", state.Sections)
	}
	if state.Sections[0].Items[0].ID != "up" {
		t.Errorf("visible event = %q, want %q", state.Sections[0].Items[0].ID, "up")
	}
}

func TestCalendarTickMovesEventToPast(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	f := newTestFeed(&fakeSource{raws: []internal.RawEvent{
		timedEvent("soon", "2026-01-15T12:30:00Z"),
	}}, now)

	v := NewCalendar(f)
	v.load(context.Background())
	if state := v.State(); len(state.Sections) != 1 {
		t.Fatalf("before tick: %d sections, want 1", len(state.Sections))
	}

	// Two hours later the event's end (start+1h) has passed. The tick only
	// re-partitions; the source is not consulted again.
	f.Now = func() time.Time { return now.Add(2 * time.Hour) }
	v.tick()

	if state := v.State(); len(state.Sections) != 0 {
		t.Errorf("after tick: %d sections, want 0", len(state.Sections))
	}
}

func TestCalendarTogglePast(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	f := newTestFeed(&fakeSource{raws: []internal.RawEvent{
		timedEvent("up", "2026-03-10T18:00:00Z"),
		timedEvent("old", "2026-01-05T18:00:00Z"),
	}}, now)

	v := NewCalendar(f)
	v.load(context.Background())

	if state := v.State(); len(state.Sections) != 1 {
		t.Fatalf("showPast=false: %d sections, want 1", len(state.Sections))
	}

	v.TogglePast()
	state := v.State()
	if !state.ShowPast {
		t.Error("ShowPast still false after toggle")
	}
	if len(state.Sections) != 3 {
		t.Fatalf("showPast=true: %d sections, want upcoming+divider+past", len(state.Sections))
	}
	if !state.Sections[1].IsDivider || state.Sections[1].Title != feed.PastDividerTitle {
		t.Errorf("middle section = %+v, want the past divider", state.Sections[1])
	}

	v.TogglePast()
	if state := v.State(); state.ShowPast || len(state.Sections) != 1 {
		t.Errorf("after toggling back: showPast=%v sections=%d, want false/1", state.ShowPast, len(state.Sections))
	}
}

func TestCalendarLoadErrorKeepsSections(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	src := &fakeSource{raws: []internal.RawEvent{timedEvent("up", "2026-01-20T18:00:00Z")}}
	f := newTestFeed(src, now)

	v := NewCalendar(f)
	v.load(context.Background())

	src.err = &internal.NetworkError{Err: errors.New("offline")}
	v.Refresh(context.Background())

	state := v.State()
	if state.Err == nil {
		t.Fatal("Err = nil after failed refresh")
	}
	if state.Refreshing {
		t.Error("Refreshing still true after refresh finished")
	}
	if len(state.Sections) != 1 {
		t.Errorf("sections dropped on failed refresh: %d, want 1", len(state.Sections))
	}
}

func TestCalendarStateEmpty(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		state       CalendarState
		wantOK      bool
		wantTitle   string
		wantMessage string
	}{
		"loading": {
			state: CalendarState{Loading: true},
		},
		"error": {
			state: CalendarState{Err: errors.New("boom")},
		},
		"has content": {
			state: CalendarState{Sections: []internal.EventSection{{Title: "January 2026"}}},
		},
		"empty upcoming": {
			state:       CalendarState{},
			wantOK:      true,
			wantTitle:   "No Upcoming Events",
			wantMessage: "Check back later for upcoming events!",
		},
		"empty with past shown": {
			state:       CalendarState{ShowPast: true},
			wantOK:      true,
			wantTitle:   "No Events Found",
			wantMessage: "There are no events in the calendar.",
		},
	}

	for name, tc := range cases {
		title, message, ok := tc.state.Empty()
		if ok != tc.wantOK {
			t.Errorf("%s: Empty() ok = %v, want %v", name, ok, tc.wantOK)
			continue
		}
		if title != tc.wantTitle || message != tc.wantMessage {
			t.Errorf("%s: Empty() = (%q, %q), want (%q, %q)", name, title, message, tc.wantTitle, tc.wantMessage)
		}
	}
}
