package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/shpemaes-utep/chapterapp/internal"
)

func newTestStorage(t *testing.T, name string) *Storage {
	t.Helper()

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_fk=1", name, time.Now().UnixNano())
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewStorage(db)
}

func TestStorageGetMissingKey(t *testing.T) {
	t.Parallel()
	s := newTestStorage(t, "missing")

	_, err := s.Get(context.Background(), "reminder_ghost")
	if !errors.Is(err, internal.ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestStorageSetGet(t *testing.T) {
	t.Parallel()
	s := newTestStorage(t, "setget")
	ctx := context.Background()

	if err := s.Set(ctx, "reminder_ev1", "handle-1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := s.Get(ctx, "reminder_ev1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "handle-1" {
		t.Errorf("Get() = %q, want %q", got, "handle-1")
	}
}

func TestStorageSetOverwrites(t *testing.T) {
	t.Parallel()
	s := newTestStorage(t, "overwrite")
	ctx := context.Background()

	if err := s.Set(ctx, "reminder_ev1", "handle-1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set(ctx, "reminder_ev1", "handle-2"); err != nil {
		t.Fatalf("second Set() error = %v", err)
	}
	got, err := s.Get(ctx, "reminder_ev1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "handle-2" {
		t.Errorf("Get() = %q, want the overwritten value %q", got, "handle-2")
	}
}

func TestStorageRemove(t *testing.T) {
	t.Parallel()
	s := newTestStorage(t, "remove")
	ctx := context.Background()

	if err := s.Set(ctx, "reminder_ev1", "handle-1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Remove(ctx, "reminder_ev1"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := s.Get(ctx, "reminder_ev1"); !errors.Is(err, internal.ErrNotFound) {
		t.Errorf("Get(removed) error = %v, want ErrNotFound", err)
	}

	// Removing a missing key is a no-op.
	if err := s.Remove(ctx, "reminder_ghost"); err != nil {
		t.Errorf("Remove(missing) error = %v, want nil", err)
	}
}

func TestStorageKeys(t *testing.T) {
	t.Parallel()
	s := newTestStorage(t, "keys")
	ctx := context.Background()

	keys, err := s.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("Keys() on empty store = %v, want none", keys)
	}

	for key, value := range map[string]string{
		"reminder_ev2": "handle-2",
		"reminder_ev1": "handle-1",
		"theme":        "dark",
	} {
		if err := s.Set(ctx, key, value); err != nil {
			t.Fatalf("Set(%s) error = %v", key, err)
		}
	}

	keys, err = s.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}
	want := []string{"reminder_ev1", "reminder_ev2", "theme"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}
