package cli

import (
	"testing"
	"time"

	"github.com/Flyrell/checkin/internal/journal"
	"github.com/Flyrell/checkin/internal/store"
	"github.com/Flyrell/checkin/internal/suggest"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

func fixedClock() store.Clock {
	return store.Clock{Now: func() time.Time { return testNow }, Location: time.UTC}
}

func newTestStore(t *testing.T) *store.FileStore {
	t.Helper()
	return store.NewFileStore(t.TempDir(), fixedClock())
}

func seedEntry(t *testing.T, st store.Store, date string, mood int, sleep float64, stress int, activities ...string) journal.Entry {
	t.Helper()
	e, err := journal.New(journal.Input{
		Date:       journal.MustParseDate(date),
		Mood:       mood,
		Sleep:      sleep,
		Stress:     &stress,
		Activities: activities,
	}, testNow)
	require.NoError(t, err)
	require.NoError(t, st.Save(e))
	return e
}

// firstSource always picks the first suggestion of a pool.
type firstSource struct{}

func (firstSource) IntN(int) int { return 0 }

func testPicker() *suggest.Picker {
	return suggest.NewPicker(firstSource{})
}
