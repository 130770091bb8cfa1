// Package view holds the explicit per-screen state structs. Each screen owns
// its state and mutates it only through its own methods, so a shell (CLI or
// mobile) can render from snapshots without ambient globals.
package view

import (
	"context"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/shpemaes-utep/chapterapp/internal"
	"github.com/shpemaes-utep/chapterapp/internal/feed"
)

// Calendar owns the calendar screen: the fetched items plus the month
// sections derived from them. A minute ticker re-derives the sections so
// items cross from upcoming to past in real time without a refetch.
type Calendar struct {
	feed *feed.Feed

	mu         sync.Mutex
	items      []internal.EventItem
	sections   []internal.EventSection
	showPast   bool
	loading    bool
	refreshing bool
	loaded     bool
	err        error

	cron *cron.Cron
}

// CalendarState is a render snapshot of the screen.
type CalendarState struct {
	Loading    bool
	Refreshing bool
	ShowPast   bool
	Sections   []internal.EventSection
	Err        error
}

func NewCalendar(f *feed.Feed) *Calendar {
	return &Calendar{
		feed: f,
		cron: cron.New(),
	}
}

// Activate runs the initial load and starts the minute ticker. Callers must
// pair it with Deactivate on teardown.
func (v *Calendar) Activate(ctx context.Context) {
	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	v.load(ctx)

	v.cron.AddFunc("@every 1m", v.tick)
	v.cron.Start()
}

// Deactivate stops the ticker and waits for a running tick to finish.
func (v *Calendar) Deactivate() {
	<-v.cron.Stop().Done()
}

// Refresh re-fetches while keeping the last sections on screen, the
// pull-to-refresh behavior.
func (v *Calendar) Refresh(ctx context.Context) {
	v.mu.Lock()
	v.refreshing = true
	v.mu.Unlock()

	v.load(ctx)
}

// TogglePast flips the past-events filter and recomposes from the items
// already in memory.
func (v *Calendar) TogglePast() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.showPast = !v.showPast
	v.recompose()
}

func (v *Calendar) State() CalendarState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return CalendarState{
		Loading:    v.loading,
		Refreshing: v.refreshing,
		ShowPast:   v.showPast,
		Sections:   v.sections,
		Err:        v.err,
	}
}

func (v *Calendar) load(ctx context.Context) {
	items, err := v.feed.Items(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	v.refreshing = false
	if err != nil {
		v.err = err
		return
	}
	v.err = nil
	v.items = items
	v.loaded = true
	v.recompose()
}

// tick re-evaluates the partition with a fresh instant; it never refetches.
func (v *Calendar) tick() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.loaded {
		return
	}
	v.recompose()
}

func (v *Calendar) recompose() {
	v.sections = feed.Compose(v.items, v.feed.Now().UnixMilli(), v.showPast)
}

// Empty returns the empty-state title and message, or ok=false when the
// screen has content (or is loading / showing an error instead).
func (s CalendarState) Empty() (title, message string, ok bool) {
	if s.Loading || s.Err != nil || len(s.Sections) > 0 {
		return "", "", false
	}
	if s.ShowPast {
		return "No Events Found", "There are no events in the calendar.", true
	}
	return "No Upcoming Events", "Check back later for upcoming events!", true
}
