package streak

import (
	"github.com/Flyrell/checkin/internal/journal"
)

// MaxWalk bounds the backward walk so malformed data cannot make it scan
// indefinitely.
const MaxWalk = 365

// Source supplies the snapshot a streak is computed from.
type Source interface {
	GetAll() ([]journal.Entry, error)
}

// Calculate loads one snapshot from src and returns the current streak
// ending at today.
func Calculate(src Source, today journal.Date) (int, error) {
	entries, err := src.GetAll()
	if err != nil {
		return 0, err
	}
	return Current(entries, today), nil
}

// Current counts consecutive days with an entry, walking backward from
// today and stopping at the first gap. Without an entry for today the
// streak is 0, even if yesterday has one.
func Current(entries []journal.Entry, today journal.Date) int {
	if len(entries) == 0 {
		return 0
	}
	have := dateSet(entries)

	streak := 0
	day := today
	for i := 0; i < MaxWalk; i++ {
		if _, ok := have[day]; !ok {
			break
		}
		streak++
		day = day.AddDays(-1)
	}
	return streak
}

// Longest returns the longest run of consecutive dates in entries,
// wherever it occurs.
func Longest(entries []journal.Entry) int {
	have := dateSet(entries)

	longest := 0
	for d := range have {
		// only start counting at the first day of a run
		if _, ok := have[d.AddDays(-1)]; ok {
			continue
		}
		run := 1
		for next := d.AddDays(1); ; next = next.AddDays(1) {
			if _, ok := have[next]; !ok {
				break
			}
			run++
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

func dateSet(entries []journal.Entry) map[journal.Date]struct{} {
	set := make(map[journal.Date]struct{}, len(entries))
	for _, e := range entries {
		set[e.Date] = struct{}{}
	}
	return set
}
