package feed

import "github.com/shpemaes-utep/chapterapp/internal"

// GroupByMonth buckets items into sections keyed by MonthKey. Section order
// is the first-seen order of each key in the input, so it inherits whatever
// sort the input already has; items within a section keep their relative
// order. Keys with no items produce no section.
func GroupByMonth(items []internal.EventItem) []internal.EventSection {
	var sections []internal.EventSection
	index := make(map[string]int)
	for _, item := range items {
		i, ok := index[item.MonthKey]
		if !ok {
			i = len(sections)
			index[item.MonthKey] = i
			sections = append(sections, internal.EventSection{Title: item.MonthKey})
		}
		sections[i].Items = append(sections[i].Items, item)
	}
	return sections
}
