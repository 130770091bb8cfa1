package google

import (
	"google.golang.org/api/calendar/v3"

	"github.com/shpemaes-utep/chapterapp/internal"
)

func newRawEvent(event *calendar.Event) internal.RawEvent {
	return internal.RawEvent{
		ID:          event.Id,
		Summary:     event.Summary,
		Location:    event.Location,
		Description: event.Description,
		Start:       newRawTime(event.Start),
		End:         newRawTime(event.End),
	}
}

func newRawTime(edt *calendar.EventDateTime) *internal.RawTime {
	if edt == nil {
		return nil
	}
	return &internal.RawTime{
		Date:     edt.Date,
		DateTime: edt.DateTime,
	}
}
