package internal

// RawTime is the start/end shape the calendar API returns: exactly one of
// Date (all-day, "2006-01-02") or DateTime (ISO-8601) is set.
type RawTime struct {
	Date     string
	DateTime string
}

// RawEvent is one loosely-typed calendar entry as returned by the source,
// before normalization. Any field may be empty; Start and End may be nil.
type RawEvent struct {
	ID          string
	Summary     string
	Location    string
	Description string
	Start       *RawTime
	End         *RawTime
}

// EventItem is the canonical representation of one calendar occurrence.
// It is immutable once constructed and rebuilt on every fetch.
type EventItem struct {
	ID          string
	Title       string
	StartTime   string // "2:00 PM", or "All Day"
	EndTime     string // empty when all-day or no genuine end time
	Date        string // "Jan 2"
	Location    string
	Description string

	// Epoch milliseconds; all temporal comparisons use these.
	StartTimestamp int64
	EndTimestamp   int64

	// MonthKey groups items into sections, e.g. "January 2026".
	MonthKey string
}

// TimeDisplay renders the detail-view time range.
func (e EventItem) TimeDisplay() string {
	if e.StartTime == "" {
		return "Time not specified"
	}
	if e.EndTime != "" {
		return e.StartTime + " to " + e.EndTime
	}
	return e.StartTime
}

// EventSection is a month-titled group of items for sectioned display.
// A divider section carries no items and only separates groups visually.
type EventSection struct {
	Title     string
	Items     []EventItem
	IsDivider bool
}
