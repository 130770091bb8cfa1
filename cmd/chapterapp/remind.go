package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shpemaes-utep/chapterapp/internal"
	"github.com/shpemaes-utep/chapterapp/internal/config"
	"github.com/shpemaes-utep/chapterapp/internal/reminder"
)

var RemindCommand = _remindCommand{
	Name:        "remind",
	Description: "Schedule a reminder for an event",
}

type _remindCommand struct {
	Name        string
	Description string
}

func (c _remindCommand) Run(ctx context.Context, cfg *config.Config, verbose bool, args []string) error {
	var (
		lead time.Duration
		wait bool
	)

	fs := flag.NewFlagSet(c.Name, flag.ExitOnError)
	fs.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage of %s %s: %s [options] <event-id>\n\n", os.Args[0], fs.Name(), fs.Name())
		fmt.Fprintf(w, "Options:\n")
		fs.PrintDefaults()
	}
	fs.DurationVar(&lead, "lead", time.Hour, "how long before the event the reminder fires")
	fs.BoolVar(&wait, "wait", false, "keep the process alive until the reminder fires")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("remind: exactly one event id is required")
	}
	eventID := fs.Arg(0)

	f, err := newFeed(ctx, cfg, verbose)
	if err != nil {
		return err
	}
	ledger, notifier, err := newLedger(cfg)
	if err != nil {
		return err
	}

	items, err := f.Items(ctx)
	if err != nil {
		return renderLoadError(err)
	}
	var event *internal.EventItem
	for i := range items {
		if items[i].ID == eventID {
			event = &items[i]
			break
		}
	}
	if event == nil {
		return fmt.Errorf("remind: no event with id %q on the calendar", eventID)
	}

	trigger := time.UnixMilli(event.StartTimestamp).Add(-lead)
	body := fmt.Sprintf("%s • %s at %s", event.Date, event.TimeDisplay(), event.Location)

	handle, err := ledger.Set(ctx, event.ID, event.Title, body, trigger)
	switch {
	case errors.Is(err, reminder.ErrReminderInPast):
		return fmt.Errorf("remind: %q would fire in the past; pick a shorter -lead", event.Title)
	case errors.Is(err, reminder.ErrPermissionDenied):
		fmt.Fprintln(os.Stderr, "Notifications are not allowed. Enable them and try again.")
		return err
	case errors.Is(err, reminder.ErrScheduleFailed):
		fmt.Fprintln(os.Stderr, "Could not schedule the reminder. Please try again.")
		return err
	case err != nil:
		return err
	}

	fmt.Fprintf(os.Stdout, "Reminder %s set for %q at %s.\n",
		handle, event.Title, trigger.In(cfg.Timezone).Format("Jan 2, 3:04 PM"))

	if wait {
		select {
		case <-ctx.Done():
		case <-time.After(time.Until(trigger) + time.Second):
		}
		notifier.Stop()
	}
	return nil
}

var UnremindCommand = _unremindCommand{
	Name:        "unremind",
	Description: "Cancel the reminder for an event",
}

type _unremindCommand struct {
	Name        string
	Description string
}

func (c _unremindCommand) Run(ctx context.Context, cfg *config.Config, verbose bool, args []string) error {
	fs := flag.NewFlagSet(c.Name, flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("unremind: exactly one event id is required")
	}
	eventID := fs.Arg(0)

	ledger, _, err := newLedger(cfg)
	if err != nil {
		return err
	}

	ok, err := ledger.Cancel(ctx, eventID)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(os.Stdout, "No reminder is set for %s.\n", eventID)
		return nil
	}
	fmt.Fprintf(os.Stdout, "Reminder for %s cancelled.\n", eventID)
	return nil
}
