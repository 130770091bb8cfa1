package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/shpemaes-utep/chapterapp/internal/config"
)

func main() {
	var (
		verbose bool
		dbPath  string
	)
	flag.BoolVar(&verbose, "v", false, "verbose output")
	flag.StringVar(&dbPath, "db", "", "path to the local database (defaults to DB_PATH)")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt)
		<-ch
		cancel()
	}()

	cfg := config.Load()
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	var err error
	switch args[0] {
	case EventsCommand.Name:
		err = EventsCommand.Run(ctx, cfg, verbose, args[1:])
	case SavedCommand.Name:
		err = SavedCommand.Run(ctx, cfg, verbose, args[1:])
	case RemindCommand.Name:
		err = RemindCommand.Run(ctx, cfg, verbose, args[1:])
	case UnremindCommand.Name:
		err = UnremindCommand.Run(ctx, cfg, verbose, args[1:])
	case AboutCommand.Name:
		err = AboutCommand.Run(ctx, cfg, verbose, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "Usage: %s [options] <command> [command options]\n\n", os.Args[0])
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintf(w, "  %-10s %s\n", EventsCommand.Name, EventsCommand.Description)
	fmt.Fprintf(w, "  %-10s %s\n", SavedCommand.Name, SavedCommand.Description)
	fmt.Fprintf(w, "  %-10s %s\n", RemindCommand.Name, RemindCommand.Description)
	fmt.Fprintf(w, "  %-10s %s\n", UnremindCommand.Name, UnremindCommand.Description)
	fmt.Fprintf(w, "  %-10s %s\n", AboutCommand.Name, AboutCommand.Description)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	flag.PrintDefaults()
}
