package stats

import (
	"errors"
	"sort"
	"time"

	"github.com/Flyrell/checkin/internal/journal"
)

// ErrEmptyDataset is returned by aggregations that have nothing to average.
// Callers show a "not enough data" state instead of numbers.
var ErrEmptyDataset = errors.New("not enough data: no entries in the selected window")

// Averages holds arithmetic means over a set of entries.
type Averages struct {
	MeanMood   float64
	MeanSleep  float64
	MeanStress float64
}

// Point is one sample of the time series used for trend charts.
type Point struct {
	Date   journal.Date
	Mood   int
	Sleep  float64
	Stress int
}

// ComputeAverages returns the mean mood, sleep and stress of entries.
func ComputeAverages(entries []journal.Entry) (Averages, error) {
	if len(entries) == 0 {
		return Averages{}, ErrEmptyDataset
	}

	var mood, sleep, stress float64
	for _, e := range entries {
		mood += float64(e.Mood)
		sleep += e.Sleep
		stress += float64(e.Stress)
	}
	n := float64(len(entries))
	return Averages{
		MeanMood:   mood / n,
		MeanSleep:  sleep / n,
		MeanStress: stress / n,
	}, nil
}

// ChronologicalSeries returns the entries as points ordered oldest first,
// whatever order they were supplied in.
func ChronologicalSeries(entries []journal.Entry) []Point {
	sorted := append([]journal.Entry(nil), entries...)
	journal.SortOldestFirst(sorted)

	points := make([]Point, 0, len(sorted))
	for _, e := range sorted {
		points = append(points, Point{
			Date:   e.Date,
			Mood:   e.Mood,
			Sleep:  e.Sleep,
			Stress: e.Stress,
		})
	}
	return points
}

// ActivityCount is how many entries in a window carry an activity tag.
type ActivityCount struct {
	Activity string
	Count    int
}

// ActivityFrequencies counts activity tags, most frequent first; ties are
// ordered by name.
func ActivityFrequencies(entries []journal.Entry) []ActivityCount {
	counts := make(map[string]int)
	for _, e := range entries {
		for _, a := range e.Activities {
			counts[a]++
		}
	}

	out := make([]ActivityCount, 0, len(counts))
	for a, c := range counts {
		out = append(out, ActivityCount{Activity: a, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Activity < out[j].Activity
	})
	return out
}

// Summary bundles the derived views of a window.
type Summary struct {
	Count      int
	From       journal.Date
	To         journal.Date
	Averages   Averages
	Weekly     Weekly
	Activities []ActivityCount
}

// Summarize computes every derived view of entries at once.
func Summarize(entries []journal.Entry) (Summary, error) {
	avg, err := ComputeAverages(entries)
	if err != nil {
		return Summary{}, err
	}

	from, to := entries[0].Date, entries[0].Date
	for _, e := range entries[1:] {
		if e.Date.Before(from) {
			from = e.Date
		}
		if e.Date.After(to) {
			to = e.Date
		}
	}

	return Summary{
		Count:      len(entries),
		From:       from,
		To:         to,
		Averages:   avg,
		Weekly:     WeeklyBreakdown(entries),
		Activities: ActivityFrequencies(entries),
	}, nil
}

// WeekdayName is the short English name used as a weekly bucket key.
func WeekdayName(d time.Weekday) string {
	return d.String()[:3]
}
