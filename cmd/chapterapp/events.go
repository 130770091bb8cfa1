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
	"github.com/shpemaes-utep/chapterapp/internal/view"
)

var EventsCommand = _eventsCommand{
	Name:        "events",
	Description: "List the chapter calendar grouped by month",
}

type _eventsCommand struct {
	Name        string
	Description string
}

func (c _eventsCommand) Run(ctx context.Context, cfg *config.Config, verbose bool, args []string) error {
	var (
		showPast bool
		watch    bool
	)

	fs := flag.NewFlagSet(c.Name, flag.ExitOnError)
	fs.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage of %s %s:\n\n", os.Args[0], fs.Name())
		fmt.Fprintf(w, "Options:\n")
		fs.PrintDefaults()
	}
	fs.BoolVar(&showPast, "past", false, "also show past events below a divider")
	fs.BoolVar(&watch, "watch", false, "keep running and re-render every minute")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := newFeed(ctx, cfg, verbose)
	if err != nil {
		return err
	}

	if !watch {
		sections, err := f.Load(ctx, showPast)
		if err != nil {
			return renderLoadError(err)
		}
		renderSections(os.Stdout, sections, showPast)
		return nil
	}

	v := view.NewCalendar(f)
	if showPast {
		v.TogglePast()
	}
	v.Activate(ctx)
	defer v.Deactivate()

	render := func() error {
		state := v.State()
		if state.Err != nil {
			return renderLoadError(state.Err)
		}
		renderSections(os.Stdout, state.Sections, state.ShowPast)
		return nil
	}
	if err := render(); err != nil {
		return err
	}

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := render(); err != nil {
				return err
			}
		}
	}
}

// renderLoadError turns pipeline failures into the retry-style messages the
// screens show, keeping the underlying error for the exit status.
func renderLoadError(err error) error {
	var apiErr *internal.APIError
	var netErr *internal.NetworkError
	switch {
	case errors.As(err, &apiErr):
		fmt.Fprintln(os.Stderr, "The calendar service rejected the request:", apiErr.Message)
	case errors.As(err, &netErr):
		fmt.Fprintln(os.Stderr, "Unable to connect. Please check your internet connection and try again.")
	}
	return err
}
