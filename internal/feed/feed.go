// Package feed implements the event feed pipeline: fetch, normalize,
// classify into upcoming/past, and group into month sections for display.
package feed

import (
	"context"
	"time"

	"github.com/shpemaes-utep/chapterapp/internal"
)

// PastDividerTitle is the title of the zero-item section separating upcoming
// from past groups.
const PastDividerTitle = "Past Events"

// Feed orchestrates one fetch of the calendar into display sections.
// The stages run strictly in order; a failure aborts the whole load.
type Feed struct {
	source internal.Source
	norm   *Normalizer

	// Now supplies the reference instant for classification. Overridable in
	// tests; defaults to time.Now.
	Now func() time.Time
}

func New(source internal.Source, norm *Normalizer) *Feed {
	return &Feed{
		source: source,
		norm:   norm,
		Now:    time.Now,
	}
}

// Items fetches the calendar and normalizes every entry, dropping malformed
// ones silently. A single bad entry never fails the fetch; a transport or
// API failure fails it as a unit.
func (f *Feed) Items(ctx context.Context) ([]internal.EventItem, error) {
	raw, err := f.source.Events(ctx)
	if err != nil {
		return nil, err
	}
	return f.norm.NormalizeAll(raw), nil
}

// Compose partitions items around now and groups them into sections.
// Upcoming sections always come first; when showPast is set and the past
// partition is non-empty, a divider section and the past month sections
// follow.
func Compose(items []internal.EventItem, now int64, showPast bool) []internal.EventSection {
	upcoming, past := Classify(items, now)
	sections := GroupByMonth(upcoming)
	if showPast && len(past) > 0 {
		sections = append(sections, internal.EventSection{Title: PastDividerTitle, IsDivider: true})
		sections = append(sections, GroupByMonth(past)...)
	}
	return sections
}

// Load runs the whole pipeline with the current instant as reference.
func (f *Feed) Load(ctx context.Context, showPast bool) ([]internal.EventSection, error) {
	items, err := f.Items(ctx)
	if err != nil {
		return nil, err
	}
	return Compose(items, f.Now().UnixMilli(), showPast), nil
}
