// Package reminder keeps the persisted eventID -> schedule-handle mapping
// consistent with the notification capability. The ledger is the sole source
// of truth for "is this event saved".
package reminder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shpemaes-utep/chapterapp/internal"
)

// KeyPrefix namespaces ledger records in the store: reminder_<eventID>.
const KeyPrefix = "reminder_"

var (
	// ErrReminderInPast rejects triggers that are not strictly in the future.
	ErrReminderInPast = errors.New("reminder: trigger time is not in the future")
	// ErrPermissionDenied means the user declined notification permission.
	// Recoverable; no record is written.
	ErrPermissionDenied = errors.New("reminder: notification permission denied")
	// ErrScheduleFailed means the scheduling primitive returned no handle.
	// Recoverable; no record is written.
	ErrScheduleFailed = errors.New("reminder: scheduling failed")
)

// Ledger coordinates the store and the notification capability. Operations
// are serialized under one mutex so concurrent Set/Cancel calls on the same
// event cannot interleave between the schedule call and the store write.
type Ledger struct {
	mu       sync.Mutex
	store    internal.Store
	notifier internal.Notifier

	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

func NewLedger(store internal.Store, notifier internal.Notifier) *Ledger {
	return &Ledger{
		store:    store,
		notifier: notifier,
		Now:      time.Now,
	}
}

// Set schedules a reminder for the event and persists the handle. The record
// is written only after scheduling succeeded; if persisting fails the
// schedule is rolled back, so a failed Set never leaves a half-done state.
func (l *Ledger) Set(ctx context.Context, eventID, title, body string, trigger time.Time) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !trigger.After(l.Now()) {
		return "", ErrReminderInPast
	}

	granted, err := l.notifier.RequestPermission(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}
	if !granted {
		return "", ErrPermissionDenied
	}

	handle, err := l.notifier.Schedule(ctx, internal.Notification{
		Title: title,
		Body:  body,
		At:    trigger,
		Data:  map[string]string{"eventId": eventID},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrScheduleFailed, err)
	}
	if handle == "" {
		return "", ErrScheduleFailed
	}

	if err := l.store.Set(ctx, KeyPrefix+eventID, handle); err != nil {
		l.notifier.Cancel(ctx, handle)
		return "", fmt.Errorf("reminder: persisting record: %w", err)
	}
	return handle, nil
}

// Cancel cancels the reminder for the event and removes its record. It
// reports false when no record exists or the underlying cancellation did not
// take effect; in the latter case the record is kept so the user can retry.
func (l *Ledger) Cancel(ctx context.Context, eventID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	handle, err := l.store.Get(ctx, KeyPrefix+eventID)
	if errors.Is(err, internal.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	ok, err := l.notifier.Cancel(ctx, handle)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := l.store.Remove(ctx, KeyPrefix+eventID); err != nil {
		return false, fmt.Errorf("reminder: removing record: %w", err)
	}
	return true, nil
}

// Remove drops the event's record with a best-effort cancel of the
// underlying notification, the semantics of removing a saved event: the
// record goes away even when cancellation fails. Unknown events are a no-op.
func (l *Ledger) Remove(ctx context.Context, eventID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	handle, err := l.store.Get(ctx, KeyPrefix+eventID)
	if errors.Is(err, internal.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if handle != "" {
		l.notifier.Cancel(ctx, handle)
	}
	return l.store.Remove(ctx, KeyPrefix+eventID)
}

// Handle returns the persisted schedule handle for the event, reporting
// whether one exists. Used by the detail view to render saved state.
func (l *Ledger) Handle(ctx context.Context, eventID string) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	handle, err := l.store.Get(ctx, KeyPrefix+eventID)
	if errors.Is(err, internal.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return handle, true, nil
}

// SavedEventIDs enumerates the ledger namespace and returns the decoded
// event identifiers. Stale records for events that already passed are kept;
// pruning them is a product decision, not the ledger's.
func (l *Ledger) SavedEventIDs(ctx context.Context) (map[string]struct{}, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	keys, err := l.store.Keys(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]struct{})
	for _, key := range keys {
		if strings.HasPrefix(key, KeyPrefix) {
			ids[strings.TrimPrefix(key, KeyPrefix)] = struct{}{}
		}
	}
	return ids, nil
}
