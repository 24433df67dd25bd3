package journal

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stress(v int) *int { return &v }

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
}

func TestNewEntry(t *testing.T) {
	e, err := New(Input{
		Date:       "2025-06-15",
		Mood:       7,
		Sleep:      7.5,
		Stress:     stress(2),
		Journal:    "quiet day",
		Activities: []string{"Social", "exercise", "Exercise"},
	}, fixedNow())

	require.NoError(t, err)
	assert.Equal(t, Date("2025-06-15"), e.Date)
	assert.Equal(t, 7, e.Mood)
	assert.Equal(t, 7.5, e.Sleep)
	assert.Equal(t, 2, e.Stress)
	assert.Equal(t, []string{"exercise", "social"}, e.Activities)
	assert.Equal(t, fixedNow(), e.Timestamp)
	assert.True(t, e.HasActivity("social"))
	assert.False(t, e.HasActivity("reading"))
}

func TestNewEntryNormalizesLineBreaks(t *testing.T) {
	e, err := New(Input{
		Date:    "2025-06-15",
		Mood:    6,
		Stress:  stress(2),
		Journal: "first line\r\nsecond line\nthird",
	}, fixedNow())

	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line\nthird", e.Journal)
}

func TestNewEntryRequiresStress(t *testing.T) {
	_, err := New(Input{Date: "2025-06-15", Mood: 5}, fixedNow())

	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"stress"}, ve.Fields)
	assert.Contains(t, err.Error(), "stress is a required field")
}

func TestEntryValidateRanges(t *testing.T) {
	base := Entry{Date: "2025-06-15", Mood: 5, Sleep: 8, Stress: 2}

	tests := []struct {
		name   string
		mutate func(e *Entry)
		field  string
	}{
		{name: "mood below range", mutate: func(e *Entry) { e.Mood = 0 }, field: "mood"},
		{name: "mood above range", mutate: func(e *Entry) { e.Mood = 11 }, field: "mood"},
		{name: "stress above range", mutate: func(e *Entry) { e.Stress = 5 }, field: "stress"},
		{name: "stress negative", mutate: func(e *Entry) { e.Stress = -1 }, field: "stress"},
		{name: "negative sleep", mutate: func(e *Entry) { e.Sleep = -0.5 }, field: "sleep"},
		{name: "infinite sleep", mutate: func(e *Entry) { e.Sleep = math.Inf(1) }, field: "sleep"},
		{name: "not a number sleep", mutate: func(e *Entry) { e.Sleep = math.NaN() }, field: "sleep"},
		{name: "malformed date", mutate: func(e *Entry) { e.Date = "2025-13-01" }, field: "date"},
		{name: "missing date", mutate: func(e *Entry) { e.Date = "" }, field: "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := base
			tt.mutate(&e)

			err := e.Validate()
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, []string{tt.field}, ve.Fields)
		})
	}
}

func TestEntryValidateBoundaries(t *testing.T) {
	for _, e := range []Entry{
		{Date: "2025-06-15", Mood: 1, Stress: 1},
		{Date: "2025-06-15", Mood: 10, Stress: 4, Sleep: 0},
	} {
		assert.NoError(t, e.Validate())
	}
}

func TestValidationErrorCollectsAllProblems(t *testing.T) {
	err := Entry{Date: "2025-06-15", Mood: 42, Stress: 0}.Validate()

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.ElementsMatch(t, []string{"mood", "stress"}, ve.Fields)
	assert.Len(t, ve.Problems, 2)
}
