package google

import (
	"testing"

	"google.golang.org/api/calendar/v3"
)

func TestNewRawEvent(t *testing.T) {
	t.Parallel()

	raw := newRawEvent(&calendar.Event{
		Id:          "ev1",
		Summary:     "GBM",
		Location:    "UGLC 126",
		Description: "<p>Bring your laptop</p>",
		Start:       &calendar.EventDateTime{DateTime: "2026-01-20T18:00:00-07:00"},
		End:         &calendar.EventDateTime{DateTime: "2026-01-20T19:00:00-07:00"},
	})

	if raw.ID != "ev1" || raw.Summary != "GBM" || raw.Location != "UGLC 126" {
		t.Errorf("mapped event = %+v, want id/summary/location carried over", raw)
	}
	if raw.Description != "<p>Bring your laptop</p>" {
		t.Errorf("Description = %q, want the raw HTML untouched", raw.Description)
	}
	if raw.Start == nil || raw.Start.DateTime != "2026-01-20T18:00:00-07:00" {
		t.Errorf("Start = %+v, want the datetime string", raw.Start)
	}
	if raw.End == nil || raw.End.DateTime != "2026-01-20T19:00:00-07:00" {
		t.Errorf("End = %+v, want the datetime string", raw.End)
	}
}

func TestNewRawEventAllDay(t *testing.T) {
	t.Parallel()

	raw := newRawEvent(&calendar.Event{
		Id:    "ev2",
		Start: &calendar.EventDateTime{Date: "2026-03-01"},
		End:   &calendar.EventDateTime{Date: "2026-03-02"},
	})

	if raw.Start == nil || raw.Start.Date != "2026-03-01" || raw.Start.DateTime != "" {
		t.Errorf("Start = %+v, want date-only", raw.Start)
	}
	if raw.End == nil || raw.End.Date != "2026-03-02" {
		t.Errorf("End = %+v, want the next date", raw.End)
	}
}

func TestNewRawEventMissingTimes(t *testing.T) {
	t.Parallel()

	raw := newRawEvent(&calendar.Event{Id: "ev3"})
	if raw.Start != nil || raw.End != nil {
		t.Errorf("Start/End = %+v/%+v, want nil for absent times", raw.Start, raw.End)
	}
}
