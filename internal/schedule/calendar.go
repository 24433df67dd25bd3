package schedule

import (
	"fmt"
	"time"

	"github.com/Flyrell/checkin/internal/journal"
	"github.com/teambition/rrule-go"
)

// ExpectedDays returns the dates between from and to (inclusive) on which
// the cadence expects a check-in. Cadences without an explicit start are
// anchored at from.
func ExpectedDays(c Cadence, from, to journal.Date) ([]journal.Date, error) {
	if !from.Valid() || !to.Valid() {
		return nil, fmt.Errorf("invalid range %s..%s", from, to)
	}
	if from.After(to) {
		return nil, nil
	}

	opts := c.opts
	if opts.Dtstart.IsZero() {
		opts.Dtstart = from.Time()
	}
	r, err := rrule.NewRRule(opts)
	if err != nil {
		return nil, fmt.Errorf("expanding cadence %q: %w", c, err)
	}

	// Include the whole of the last day even when the rule carries a time.
	end := to.Time().Add(24*time.Hour - time.Nanosecond)
	var days []journal.Date
	seen := make(map[journal.Date]bool)
	for _, t := range r.Between(from.Time(), end, true) {
		d := journal.DateOf(t, time.UTC)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	return days, nil
}

// Status is how a calendar day is rendered.
type Status int

const (
	// Rest is a day without an entry that the cadence did not expect.
	Rest Status = iota
	// Done is a day with an entry.
	Done
	// Missed is an expected day without an entry.
	Missed
)

// Day is one calendar date with its entry, if any.
type Day struct {
	Date     journal.Date
	Entry    journal.Entry
	HasEntry bool
	Expected bool
}

func (d Day) Status() Status {
	switch {
	case d.HasEntry:
		return Done
	case d.Expected:
		return Missed
	default:
		return Rest
	}
}

// Calendar lays out every date between from and to (inclusive), oldest
// first, marking which were expected by the cadence and which have entries.
func Calendar(entries []journal.Entry, c Cadence, from, to journal.Date) ([]Day, error) {
	expected, err := ExpectedDays(c, from, to)
	if err != nil {
		return nil, err
	}
	isExpected := make(map[journal.Date]bool, len(expected))
	for _, d := range expected {
		isExpected[d] = true
	}
	byDate := make(map[journal.Date]journal.Entry, len(entries))
	for _, e := range entries {
		byDate[e.Date] = e
	}

	var days []Day
	for d := from; !d.After(to); d = d.AddDays(1) {
		e, ok := byDate[d]
		days = append(days, Day{
			Date:     d,
			Entry:    e,
			HasEntry: ok,
			Expected: isExpected[d],
		})
	}
	return days, nil
}

// Adherence returns how many expected days have an entry, and how many days
// were expected in total.
func Adherence(days []Day) (kept, expected int) {
	for _, d := range days {
		if !d.Expected {
			continue
		}
		expected++
		if d.HasEntry {
			kept++
		}
	}
	return kept, expected
}
