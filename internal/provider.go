package internal

import (
	"context"
	"time"
)

// Source fetches the raw entries of the configured calendar. Implementations
// map their transport and API failures to *NetworkError and *APIError.
type Source interface {
	Events(ctx context.Context) ([]RawEvent, error)
}

// Store is the string-keyed persistence shim used to remember reminders.
// Get returns ErrNotFound for missing keys; Keys lists every stored key.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// Notification is the payload handed to the notification capability.
type Notification struct {
	Title string
	Body  string
	At    time.Time
	Data  map[string]string
}

// Notifier is the platform notification capability, consumed as-is.
// Schedule returns an opaque identifier used later to cancel; Cancel reports
// whether the underlying cancellation took effect.
type Notifier interface {
	RequestPermission(ctx context.Context) (bool, error)
	Schedule(ctx context.Context, n Notification) (string, error)
	Cancel(ctx context.Context, id string) (bool, error)
}
