package feed

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/shpemaes-utep/chapterapp/internal"
)

// assumedDuration is used as the end of events that carry no genuine end
// time, so they still age out of the upcoming partition.
const assumedDuration = time.Hour

const (
	timeLayout  = "3:04 PM"
	dateLayout  = "Jan 2"
	monthLayout = "January 2006"

	allDayLabel     = "All Day"
	defaultTitle    = "No Title"
	defaultLocation = "TBD"
)

// Normalizer converts raw calendar entries into canonical EventItems.
// Formatting uses a fixed location so output does not depend on the host's
// ambient timezone configuration.
type Normalizer struct {
	loc *time.Location
}

func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.Local
	}
	return &Normalizer{loc: loc}
}

// Normalize builds an EventItem from one raw entry. It reports ok=false when
// the entry carries no parseable start information; such entries are dropped,
// never defaulted.
func (n *Normalizer) Normalize(raw internal.RawEvent) (internal.EventItem, bool) {
	start, ok := n.parseTime(raw.Start)
	if !ok {
		return internal.EventItem{}, false
	}
	isAllDay := raw.Start.DateTime == ""

	end, hasEnd := n.parseTime(raw.End)
	hasRealEnd := hasEnd && !end.Equal(start)

	endInstant := start.Add(assumedDuration)
	if hasRealEnd {
		endInstant = end
	}

	startTime := allDayLabel
	endTime := ""
	if !isAllDay {
		startTime = start.In(n.loc).Format(timeLayout)
		if hasRealEnd {
			endTime = end.In(n.loc).Format(timeLayout)
		}
	}

	title := raw.Summary
	if title == "" {
		title = defaultTitle
	}
	location := raw.Location
	if location == "" {
		location = defaultLocation
	}

	return internal.EventItem{
		ID:             raw.ID,
		Title:          title,
		StartTime:      startTime,
		EndTime:        endTime,
		Date:           start.In(n.loc).Format(dateLayout),
		Location:       location,
		Description:    StripHTML(raw.Description),
		StartTimestamp: start.UnixMilli(),
		EndTimestamp:   endInstant.UnixMilli(),
		MonthKey:       start.In(n.loc).Format(monthLayout),
	}, true
}

// NormalizeAll maps every entry through Normalize, silently dropping rejects
// and preserving input order.
func (n *Normalizer) NormalizeAll(raws []internal.RawEvent) []internal.EventItem {
	items := make([]internal.EventItem, 0, len(raws))
	for _, raw := range raws {
		if item, ok := n.Normalize(raw); ok {
			items = append(items, item)
		}
	}
	return items
}

func (n *Normalizer) parseTime(rt *internal.RawTime) (time.Time, bool) {
	if rt == nil {
		return time.Time{}, false
	}
	if rt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, rt.DateTime)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	if rt.Date != "" {
		t, err := time.ParseInLocation("2006-01-02", rt.Date, n.loc)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	return time.Time{}, false
}

var spaceRun = regexp.MustCompile(`\s+`)

// StripHTML flattens markup into plain text: tags removed, entities decoded,
// whitespace runs collapsed, ends trimmed. Descriptions come back from the
// calendar API as HTML fragments.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	text := s
	if strings.ContainsAny(s, "<&") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
		if err == nil {
			text = doc.Text()
		}
	}
	// The entity decoder turns &nbsp; into U+00A0, which \s does not match.
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = spaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
