package stats

import (
	"testing"
	"time"

	"github.com/Flyrell/checkin/internal/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(date string, mood int, sleep float64, stress int, activities ...string) journal.Entry {
	if activities == nil {
		activities = []string{}
	}
	return journal.Entry{
		Date:       journal.MustParseDate(date),
		Mood:       mood,
		Sleep:      sleep,
		Stress:     stress,
		Activities: activities,
		Timestamp:  time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC),
	}
}

func TestComputeAverages(t *testing.T) {
	avg, err := ComputeAverages([]journal.Entry{
		entry("2025-06-14", 4, 6, 2),
		entry("2025-06-15", 8, 8, 1),
	})
	require.NoError(t, err)
	assert.InDelta(t, 6.0, avg.MeanMood, 1e-9)
	assert.InDelta(t, 7.0, avg.MeanSleep, 1e-9)
	assert.InDelta(t, 1.5, avg.MeanStress, 1e-9)
}

func TestComputeAveragesEmpty(t *testing.T) {
	_, err := ComputeAverages(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = ComputeAverages([]journal.Entry{})
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestChronologicalSeriesIgnoresInputOrder(t *testing.T) {
	points := ChronologicalSeries([]journal.Entry{
		entry("2025-06-15", 8, 8, 1),
		entry("2025-06-01", 3, 5, 4),
		entry("2025-06-10", 6, 7.5, 2),
	})

	require.Len(t, points, 3)
	assert.Equal(t, journal.Date("2025-06-01"), points[0].Date)
	assert.Equal(t, journal.Date("2025-06-10"), points[1].Date)
	assert.Equal(t, journal.Date("2025-06-15"), points[2].Date)
	assert.Equal(t, 7.5, points[1].Sleep)
	assert.Equal(t, 4, points[0].Stress)
}

func TestChronologicalSeriesDoesNotReorderInput(t *testing.T) {
	in := []journal.Entry{
		entry("2025-06-15", 8, 8, 1),
		entry("2025-06-01", 3, 5, 4),
	}
	ChronologicalSeries(in)
	assert.Equal(t, journal.Date("2025-06-15"), in[0].Date)
}

func TestWeeklyBreakdown(t *testing.T) {
	// 2025-06-09 and 2025-06-16 are Mondays, 2025-06-14 a Saturday
	weekly := WeeklyBreakdown([]journal.Entry{
		entry("2025-06-16", 8, 8, 1),
		entry("2025-06-09", 4, 6, 3),
		entry("2025-06-14", 5, 9, 2),
	})

	require.Len(t, weekly, 2)
	assert.Equal(t, "Mon", weekly[0].Name)
	assert.Equal(t, "Sat", weekly[1].Name)

	mon, ok := weekly.Get("Mon")
	require.True(t, ok)
	assert.Equal(t, time.Monday, mon.Day)
	assert.InDelta(t, 6.0, mon.MeanMood, 1e-9)
	assert.InDelta(t, 7.0, mon.MeanSleep, 1e-9)
	assert.InDelta(t, 2.0, mon.MeanStress, 1e-9)
	assert.Equal(t, 2, mon.Count)
	assert.Equal(t, journal.MoodNeutral, mon.Level())

	_, ok = weekly.Get("Tue")
	assert.False(t, ok)
}

func TestWeeklyBreakdownOrderSundayFirst(t *testing.T) {
	weekly := WeeklyBreakdown([]journal.Entry{
		entry("2025-06-14", 5, 7, 2), // Sat
		entry("2025-06-11", 5, 7, 2), // Wed
		entry("2025-06-15", 5, 7, 2), // Sun
	})

	names := make([]string, 0, len(weekly))
	for _, b := range weekly {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"Sun", "Wed", "Sat"}, names)
}

func TestWeeklyBreakdownEmpty(t *testing.T) {
	assert.Empty(t, WeeklyBreakdown(nil))
}

func TestActivityFrequencies(t *testing.T) {
	freq := ActivityFrequencies([]journal.Entry{
		entry("2025-06-13", 5, 7, 2, "exercise", "social"),
		entry("2025-06-14", 5, 7, 2, "reading", "exercise"),
		entry("2025-06-15", 5, 7, 2, "social", "exercise"),
		entry("2025-06-16", 5, 7, 2),
	})

	assert.Equal(t, []ActivityCount{
		{Activity: "exercise", Count: 3},
		{Activity: "social", Count: 2},
		{Activity: "reading", Count: 1},
	}, freq)
}

func TestSummarize(t *testing.T) {
	s, err := Summarize([]journal.Entry{
		entry("2025-06-15", 8, 8, 1, "exercise"),
		entry("2025-06-09", 4, 6, 2),
		entry("2025-06-12", 6, 7, 3, "exercise"),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, s.Count)
	assert.Equal(t, journal.Date("2025-06-09"), s.From)
	assert.Equal(t, journal.Date("2025-06-15"), s.To)
	assert.InDelta(t, 6.0, s.Averages.MeanMood, 1e-9)
	assert.Len(t, s.Weekly, 3)
	assert.Equal(t, []ActivityCount{{Activity: "exercise", Count: 2}}, s.Activities)

	_, err = Summarize(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}
