package feed

import (
	"sort"

	"github.com/shpemaes-utep/chapterapp/internal"
)

// Classify partitions items around now (epoch milliseconds). The cut is on
// EndTimestamp, so an event that has started but not ended is still
// upcoming; the boundary itself counts as upcoming. Upcoming is ordered
// soonest first, past most recent first, ties keep input order.
func Classify(items []internal.EventItem, now int64) (upcoming, past []internal.EventItem) {
	for _, item := range items {
		if item.EndTimestamp >= now {
			upcoming = append(upcoming, item)
		} else {
			past = append(past, item)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].StartTimestamp < upcoming[j].StartTimestamp
	})
	sort.SliceStable(past, func(i, j int) bool {
		return past[i].StartTimestamp > past[j].StartTimestamp
	})
	return upcoming, past
}
