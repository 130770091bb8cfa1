package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/shpemaes-utep/chapterapp/internal/config"
	"github.com/shpemaes-utep/chapterapp/internal/view"
)

var SavedCommand = _savedCommand{
	Name:        "saved",
	Description: "List saved events, or remove one with -remove",
}

type _savedCommand struct {
	Name        string
	Description string
}

func (c _savedCommand) Run(ctx context.Context, cfg *config.Config, verbose bool, args []string) error {
	var removeID string

	fs := flag.NewFlagSet(c.Name, flag.ExitOnError)
	fs.StringVar(&removeID, "remove", "", "remove the saved event with this id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := newFeed(ctx, cfg, verbose)
	if err != nil {
		return err
	}
	ledger, _, err := newLedger(cfg)
	if err != nil {
		return err
	}

	v := view.NewSaved(f, ledger)

	if removeID != "" {
		if err := v.Remove(ctx, removeID); err != nil {
			return fmt.Errorf("removing saved event: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Removed %s from saved events.\n", removeID)
	}

	v.Load(ctx)
	state := v.State()
	if state.Err != nil {
		return renderLoadError(state.Err)
	}
	if len(state.Sections) == 0 {
		fmt.Fprintln(os.Stdout, "No saved events. Set a reminder on an event to save it here!")
		return nil
	}
	renderSections(os.Stdout, state.Sections, false)
	return nil
}
