// Package google reads the chapter's public Google Calendar through the
// calendar/v3 API with an API key. The calendar is world-readable, so no
// account login is involved.
package google

import (
	"context"
	"errors"
	"fmt"
	"os"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/shpemaes-utep/chapterapp/internal"
)

type Client struct {
	calendarID string
	svc        *calendar.Service

	Verbose bool
}

func NewClient(ctx context.Context, apiKey, calendarID string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("google: missing api key")
	}
	if calendarID == "" {
		return nil, errors.New("google: missing calendar id")
	}
	svc, err := calendar.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("google: creating service: %v", err)
	}
	return &Client{
		calendarID: calendarID,
		svc:        svc,
	}, nil
}

// Events fetches every entry of the calendar in one request, recurring
// events expanded into single instances, ordered by start time. API-level
// rejections surface as *internal.APIError, everything else as
// *internal.NetworkError.
func (c *Client) Events(ctx context.Context) ([]internal.RawEvent, error) {
	c.logf("checking for events")

	res, err := c.svc.Events.List(c.calendarID).
		Context(ctx).
		ShowDeleted(false).
		SingleEvents(true).
		OrderBy("startTime").
		Do()
	if err != nil {
		var gErr *googleapi.Error
		if errors.As(err, &gErr) {
			c.logf("api error: %d %s", gErr.Code, gErr.Message)
			return nil, &internal.APIError{StatusCode: gErr.Code, Message: gErr.Message}
		}
		c.logf("network error: %v", err)
		return nil, &internal.NetworkError{Err: err}
	}

	raw := make([]internal.RawEvent, 0, len(res.Items))
	for _, item := range res.Items {
		raw = append(raw, newRawEvent(item))
	}
	c.logf("fetched %d events", len(raw))
	return raw, nil
}

func (c *Client) logf(format string, a ...any) {
	if c.Verbose {
		internal.Logf(os.Stdout, "google:", format, a...)
	}
}
