package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecordsLegacyDefaults(t *testing.T) {
	data := []byte(`[
		{"date": "2025-06-15", "mood": 7, "sleep": 7.5, "stress": 2, "journal": "ok", "activities": ["exercise"], "timestamp": "2025-06-15T20:01:02.345Z"},
		{"date": "2025-06-14", "mood": 4}
	]`)

	entries, skipped, err := DecodeRecords(data)

	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, entries, 2)

	assert.Equal(t, Date("2025-06-15"), entries[0].Date)
	assert.Equal(t, 7.5, entries[0].Sleep)
	assert.Equal(t, []string{"exercise"}, entries[0].Activities)
	assert.Equal(t, time.Date(2025, 6, 15, 20, 1, 2, 345000000, time.UTC), entries[0].Timestamp)

	legacy := entries[1]
	assert.Equal(t, 4, legacy.Mood)
	assert.Zero(t, legacy.Sleep)
	assert.Zero(t, legacy.Stress)
	assert.Empty(t, legacy.Journal)
	assert.NotNil(t, legacy.Activities)
	assert.Empty(t, legacy.Activities)
	assert.True(t, legacy.Timestamp.IsZero())
}

func TestDecodeRecordsSkipsMalformed(t *testing.T) {
	data := []byte(`[
		"not an object",
		{"date": "yesterday", "mood": 5, "stress": 1},
		{"date": "2025-06-13", "mood": "five", "stress": 1},
		{"date": "2025-06-12", "mood": 5, "stress": 1, "timestamp": "garbage"}
	]`)

	entries, skipped, err := DecodeRecords(data)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, Date("2025-06-12"), entries[0].Date)
	assert.True(t, entries[0].Timestamp.IsZero())

	require.Len(t, skipped, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{skipped[0].Index, skipped[1].Index, skipped[2].Index})
}

func TestDecodeRecordsKeepsNewestDuplicate(t *testing.T) {
	data := []byte(`[
		{"date": "2025-06-15", "mood": 3, "stress": 1, "timestamp": "2025-06-15T08:00:00Z"},
		{"date": "2025-06-14", "mood": 5, "stress": 2},
		{"date": "2025-06-15", "mood": 9, "stress": 1, "timestamp": "2025-06-15T21:00:00Z"},
		{"date": "2025-06-14", "mood": 7, "stress": 2}
	]`)

	entries, skipped, err := DecodeRecords(data)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, Date("2025-06-15"), entries[0].Date)
	assert.Equal(t, 9, entries[0].Mood)
	assert.Equal(t, Date("2025-06-14"), entries[1].Date)
	assert.Equal(t, 5, entries[1].Mood)

	require.Len(t, skipped, 2)
	assert.Equal(t, 0, skipped[0].Index)
	assert.Contains(t, skipped[0].Reason, "duplicate record for 2025-06-15")
	assert.Equal(t, 3, skipped[1].Index)
	assert.Contains(t, skipped[1].Reason, "duplicate record for 2025-06-14")
}

func TestDecodeRecordsRejectsNonArray(t *testing.T) {
	_, _, err := DecodeRecords([]byte(`{"date": "2025-06-15"}`))
	assert.Error(t, err)
}

func TestEncodeRecordsSortsNewestFirst(t *testing.T) {
	entries := []Entry{
		{Date: "2025-06-13", Mood: 3, Stress: 3},
		{Date: "2025-06-15", Mood: 8, Stress: 1, Activities: []string{"social"}, Timestamp: fixedNow()},
		{Date: "2025-06-14", Mood: 5, Stress: 2},
	}

	data, err := EncodeRecords(entries)
	require.NoError(t, err)

	decoded, skipped, err := DecodeRecords(data)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, decoded, 3)
	assert.Equal(t, []Date{"2025-06-15", "2025-06-14", "2025-06-13"},
		[]Date{decoded[0].Date, decoded[1].Date, decoded[2].Date})
	assert.Equal(t, fixedNow(), decoded[0].Timestamp)
	assert.Contains(t, string(data), `"activities": []`)

	// input slice is untouched
	assert.Equal(t, Date("2025-06-13"), entries[0].Date)
}

func TestSortOldestFirst(t *testing.T) {
	entries := []Entry{{Date: "2025-06-15"}, {Date: "2025-06-13"}, {Date: "2025-06-14"}}
	SortOldestFirst(entries)
	assert.Equal(t, Date("2025-06-13"), entries[0].Date)
	assert.Equal(t, Date("2025-06-15"), entries[2].Date)
}
