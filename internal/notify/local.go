// Package notify provides an in-process implementation of the notification
// capability for the CLI. A mobile shell would supply the platform's
// scheduler behind the same interface.
package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/shpemaes-utep/chapterapp/internal"
)

// Local schedules reminders with in-process timers and writes them to w when
// they fire. Handles are only meaningful within this process.
type Local struct {
	mu     sync.Mutex
	w      io.Writer
	seq    int
	timers map[string]*time.Timer
}

func NewLocal(w io.Writer) *Local {
	return &Local{
		w:      w,
		timers: make(map[string]*time.Timer),
	}
}

// RequestPermission always grants; the terminal needs no permission.
func (l *Local) RequestPermission(context.Context) (bool, error) {
	return true, nil
}

func (l *Local) Schedule(_ context.Context, n internal.Notification) (string, error) {
	if !n.At.After(time.Now()) {
		return "", errors.New("notify: trigger is not in the future")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	id := fmt.Sprintf("local-%d", l.seq)
	l.timers[id] = time.AfterFunc(time.Until(n.At), func() {
		l.mu.Lock()
		delete(l.timers, id)
		l.mu.Unlock()
		fmt.Fprintf(l.w, "[reminder] %s — %s\n", n.Title, n.Body)
	})
	return id, nil
}

// Cancel stops the timer for id. Cancelling an unknown or already-fired
// handle is a no-op that still reports success, matching the platform API.
func (l *Local) Cancel(_ context.Context, id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if t, ok := l.timers[id]; ok {
		t.Stop()
		delete(l.timers, id)
	}
	return true, nil
}

// Pending reports the number of scheduled, unfired reminders.
func (l *Local) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.timers)
}

// Stop cancels every pending timer.
func (l *Local) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, t := range l.timers {
		t.Stop()
		delete(l.timers, id)
	}
}
