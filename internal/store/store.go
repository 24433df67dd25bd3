package store

//go:generate mockgen -source=store.go -destination=../mocks/store/mock_store.go -package=mock_store

import (
	"fmt"
	"time"

	"github.com/Flyrell/checkin/internal/journal"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Store persists one Entry per calendar date.
type Store interface {
	// GetAll returns every entry, newest first.
	GetAll() ([]journal.Entry, error)
	// Get looks up the entry for date; ok is false when none exists.
	Get(date journal.Date) (e journal.Entry, ok bool, err error)
	// Save validates e and upserts it by date.
	Save(e journal.Entry) error
	// GetLastNDays returns entries dated on or after today minus n days.
	GetLastNDays(n int) ([]journal.Entry, error)
}

// Clock resolves "today" for date-windowed queries.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

// SystemClock returns a Clock reading the wall clock in loc.
func SystemClock(loc *time.Location) Clock {
	return Clock{Now: time.Now, Location: loc}
}

// Today returns the current calendar date in the clock's location.
func (c Clock) Today() journal.Date {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return journal.DateOf(now(), c.Location)
}

// Cutoff returns the earliest date included in a window of n days.
// n must not be negative; n=0 yields today.
func (c Clock) Cutoff(n int) (journal.Date, error) {
	if n < 0 {
		return "", fmt.Errorf("window must be 0 or positive, got %d", n)
	}
	return c.Today().AddDays(-n), nil
}

// filterSince keeps entries dated on or after cutoff, preserving order.
func filterSince(entries []journal.Entry, cutoff journal.Date) []journal.Entry {
	out := make([]journal.Entry, 0, len(entries))
	for _, e := range entries {
		if !e.Date.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// Options configures Open.
type Options struct {
	Backend string
	DataDir string
	Clock   Clock
}

// Open returns the Store for the configured backend. The returned close
// function releases backend resources and is always non-nil.
func Open(opts Options) (Store, func() error, error) {
	switch opts.Backend {
	case "", BackendJSON:
		return NewFileStore(opts.DataDir, opts.Clock), func() error { return nil }, nil
	case BackendSQLite:
		s, err := OpenSQLiteStore(SQLitePath(opts.DataDir), opts.Clock)
		if err != nil {
			return nil, func() error { return nil }, err
		}
		return s, s.Close, nil
	default:
		return nil, func() error { return nil }, fmt.Errorf("unknown storage backend %q (supported: %s, %s)", opts.Backend, BackendJSON, BackendSQLite)
	}
}
