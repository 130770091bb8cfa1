package main

import (
	"context"
	"database/sql"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/shpemaes-utep/chapterapp/calendar/google"
	"github.com/shpemaes-utep/chapterapp/internal/config"
	"github.com/shpemaes-utep/chapterapp/internal/feed"
	"github.com/shpemaes-utep/chapterapp/internal/notify"
	"github.com/shpemaes-utep/chapterapp/internal/reminder"
	"github.com/shpemaes-utep/chapterapp/internal/sqlite"
)

func newFeed(ctx context.Context, cfg *config.Config, verbose bool) (*feed.Feed, error) {
	client, err := google.NewClient(ctx, cfg.APIKey, cfg.CalendarID)
	if err != nil {
		return nil, err
	}
	client.Verbose = verbose
	return feed.New(client, feed.NewNormalizer(cfg.Timezone)), nil
}

func newLedger(cfg *config.Config) (*reminder.Ledger, *notify.Local, error) {
	db, err := sql.Open(sqlite.DriverName, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	notifier := notify.NewLocal(os.Stdout)
	return reminder.NewLedger(sqlite.NewStorage(db), notifier), notifier, nil
}
