package view

import (
	"context"
	"sort"
	"sync"

	"github.com/shpemaes-utep/chapterapp/internal"
	"github.com/shpemaes-utep/chapterapp/internal/feed"
	"github.com/shpemaes-utep/chapterapp/internal/reminder"
)

// Saved owns the saved-events screen. It reconciles a fresh fetch against
// the reminder ledger: only events the user asked to be reminded about are
// kept, sorted soonest first and grouped by month.
type Saved struct {
	feed   *feed.Feed
	ledger *reminder.Ledger

	mu       sync.Mutex
	items    []internal.EventItem
	sections []internal.EventSection
	loading  bool
	err      error
}

// SavedState is a render snapshot of the screen.
type SavedState struct {
	Loading  bool
	Sections []internal.EventSection
	Err      error
}

func NewSaved(f *feed.Feed, ledger *reminder.Ledger) *Saved {
	return &Saved{
		feed:   f,
		ledger: ledger,
	}
}

// Load rebuilds the screen. When the ledger is empty the network is skipped
// entirely.
func (v *Saved) Load(ctx context.Context) {
	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	ids, err := v.ledger.SavedEventIDs(ctx)
	if err != nil {
		v.fail(err)
		return
	}
	if len(ids) == 0 {
		v.mu.Lock()
		defer v.mu.Unlock()
		v.loading = false
		v.err = nil
		v.items = nil
		v.sections = nil
		return
	}

	items, err := v.feed.Items(ctx)
	if err != nil {
		v.fail(err)
		return
	}

	kept := make([]internal.EventItem, 0, len(ids))
	for _, item := range items {
		if _, ok := ids[item.ID]; ok {
			kept = append(kept, item)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].StartTimestamp < kept[j].StartTimestamp
	})

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	v.err = nil
	v.items = kept
	v.sections = feed.GroupByMonth(kept)
}

// Remove drops the event from the ledger and from the screen without a
// refetch.
func (v *Saved) Remove(ctx context.Context, eventID string) error {
	if err := v.ledger.Remove(ctx, eventID); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	kept := v.items[:0]
	for _, item := range v.items {
		if item.ID != eventID {
			kept = append(kept, item)
		}
	}
	v.items = kept
	v.sections = feed.GroupByMonth(kept)
	return nil
}

func (v *Saved) State() SavedState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return SavedState{
		Loading:  v.loading,
		Sections: v.sections,
		Err:      v.err,
	}
}

func (v *Saved) fail(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	v.err = err
}
