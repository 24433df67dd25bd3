package stats

import (
	"strings"
	"time"

	"github.com/Flyrell/checkin/internal/journal"
)

// WeekdayBucket aggregates every entry that falls on one weekday.
type WeekdayBucket struct {
	Day        time.Weekday
	Name       string
	MeanMood   float64
	MeanSleep  float64
	MeanStress float64
	Count      int
}

// Level maps the bucket's mean mood onto the five-level scale.
func (b WeekdayBucket) Level() journal.MoodLevel {
	return journal.MoodLevelOf(b.MeanMood)
}

// Weekly is a breakdown ordered Sunday to Saturday. Weekdays without any
// entry have no bucket.
type Weekly []WeekdayBucket

// Get returns the bucket for a short weekday name such as "Mon".
func (w Weekly) Get(name string) (WeekdayBucket, bool) {
	for _, b := range w {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return WeekdayBucket{}, false
}

// WeeklyBreakdown groups entries by the weekday of their date. Entries from
// different calendar weeks share a bucket.
func WeeklyBreakdown(entries []journal.Entry) Weekly {
	type sums struct {
		mood, sleep, stress float64
		count               int
	}
	var acc [7]sums

	for _, e := range entries {
		if !e.Date.Valid() {
			continue
		}
		d := e.Date.Weekday()
		acc[d].mood += float64(e.Mood)
		acc[d].sleep += e.Sleep
		acc[d].stress += float64(e.Stress)
		acc[d].count++
	}

	var weekly Weekly
	for d := time.Sunday; d <= time.Saturday; d++ {
		s := acc[d]
		if s.count == 0 {
			continue
		}
		n := float64(s.count)
		weekly = append(weekly, WeekdayBucket{
			Day:        d,
			Name:       WeekdayName(d),
			MeanMood:   s.mood / n,
			MeanSleep:  s.sleep / n,
			MeanStress: s.stress / n,
			Count:      s.count,
		})
	}
	return weekly
}
