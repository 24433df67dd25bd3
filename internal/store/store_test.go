package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Flyrell/checkin/internal/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() Clock {
	return Clock{
		Now:      func() time.Time { return time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC) },
		Location: time.UTC,
	}
}

func testEntry(date string, mood, stress int) journal.Entry {
	return journal.Entry{
		Date:       journal.MustParseDate(date),
		Mood:       mood,
		Sleep:      7,
		Stress:     stress,
		Journal:    "note for " + date,
		Activities: []string{"exercise"},
		Timestamp:  time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
	}
}

type backend struct {
	name string
	open func(t *testing.T) Store
}

func backends() []backend {
	return []backend{
		{
			name: "json",
			open: func(t *testing.T) Store {
				return NewFileStore(t.TempDir(), fixedClock())
			},
		},
		{
			name: "sqlite",
			open: func(t *testing.T) Store {
				s, err := OpenSQLiteStore(SQLitePath(t.TempDir()), fixedClock())
				require.NoError(t, err)
				t.Cleanup(func() { _ = s.Close() })
				return s
			},
		},
	}
}

func dates(entries []journal.Entry) []journal.Date {
	out := make([]journal.Date, len(entries))
	for i, e := range entries {
		out[i] = e.Date
	}
	return out
}

func TestStoreEmpty(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			s := b.open(t)

			all, err := s.GetAll()
			require.NoError(t, err)
			assert.Empty(t, all)

			_, ok, err := s.Get("2025-06-15")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestStoreSaveAndGet(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			s := b.open(t)
			e := testEntry("2025-06-15", 7, 2)
			e.Sleep = 6.75

			require.NoError(t, s.Save(e))

			got, ok, err := s.Get("2025-06-15")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, e, got)
		})
	}
}

func TestStoreSaveOverwritesSameDate(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			s := b.open(t)

			require.NoError(t, s.Save(testEntry("2025-06-15", 3, 4)))
			second := testEntry("2025-06-15", 9, 1)
			second.Journal = "much better"
			require.NoError(t, s.Save(second))
			require.NoError(t, s.Save(second))

			all, err := s.GetAll()
			require.NoError(t, err)
			require.Len(t, all, 1)
			assert.Equal(t, 9, all[0].Mood)
			assert.Equal(t, 1, all[0].Stress)
			assert.Equal(t, "much better", all[0].Journal)
		})
	}
}

func TestStoreGetAllNewestFirstWithoutDuplicates(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			s := b.open(t)

			for _, d := range []string{"2025-06-13", "2025-06-15", "2025-05-30", "2025-06-14", "2025-06-13"} {
				require.NoError(t, s.Save(testEntry(d, 5, 2)))
			}

			all, err := s.GetAll()
			require.NoError(t, err)
			assert.Equal(t, []journal.Date{"2025-06-15", "2025-06-14", "2025-06-13", "2025-05-30"}, dates(all))
		})
	}
}

func TestStoreSaveRejectsInvalidEntry(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			s := b.open(t)
			require.NoError(t, s.Save(testEntry("2025-06-15", 5, 2)))

			missingStress := testEntry("2025-06-15", 8, 0)
			err := s.Save(missingStress)
			require.Error(t, err)
			assert.True(t, journal.IsValidationError(err))

			outOfRange := testEntry("2025-06-14", 11, 2)
			assert.True(t, journal.IsValidationError(s.Save(outOfRange)))

			all, err := s.GetAll()
			require.NoError(t, err)
			require.Len(t, all, 1)
			assert.Equal(t, 5, all[0].Mood)
		})
	}
}

func TestStoreGetLastNDays(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			s := b.open(t)
			// today is 2025-06-15
			for _, d := range []string{"2025-06-16", "2025-06-15", "2025-06-14", "2025-06-08", "2025-06-07"} {
				require.NoError(t, s.Save(testEntry(d, 5, 2)))
			}

			week, err := s.GetLastNDays(7)
			require.NoError(t, err)
			assert.Equal(t, []journal.Date{"2025-06-16", "2025-06-15", "2025-06-14", "2025-06-08"}, dates(week))

			today, err := s.GetLastNDays(0)
			require.NoError(t, err)
			assert.Equal(t, []journal.Date{"2025-06-16", "2025-06-15"}, dates(today))

			_, err = s.GetLastNDays(-1)
			assert.Error(t, err)
		})
	}
}

func TestFileStorePersistsSortedCollection(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir, fixedClock())

	require.NoError(t, s.Save(testEntry("2025-06-13", 5, 2)))
	require.NoError(t, s.Save(testEntry("2025-06-15", 6, 1)))
	require.NoError(t, s.Save(testEntry("2025-06-14", 7, 3)))

	data, err := os.ReadFile(filepath.Join(dir, EntriesFile))
	require.NoError(t, err)

	entries, skipped, err := journal.DecodeRecords(data)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, []journal.Date{"2025-06-15", "2025-06-14", "2025-06-13"}, dates(entries))

	leftovers, err := filepath.Glob(filepath.Join(dir, ".entries-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestFileStoreToleratesLegacyAndCorruptRecords(t *testing.T) {
	dir := t.TempDir()
	legacy := `[
		{"date": "2025-06-13", "mood": 4, "timestamp": "2025-06-13T08:00:00Z"},
		{"date": "not-a-date", "mood": 4},
		42,
		{"date": "2025-06-15", "mood": 8, "sleep": 7.5, "stress": 1, "journal": "", "activities": ["social"], "timestamp": "2025-06-15T08:00:00Z"}
	]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, EntriesFile), []byte(legacy), 0644))

	s := NewFileStore(dir, fixedClock())
	all, err := s.GetAll()
	require.NoError(t, err)
	require.Equal(t, []journal.Date{"2025-06-15", "2025-06-13"}, dates(all))
	assert.Zero(t, all[1].Sleep)
	assert.Zero(t, all[1].Stress)
	assert.Empty(t, all[1].Activities)

	// a save rewrites the collection without the unreadable records
	require.NoError(t, s.Save(testEntry("2025-06-14", 5, 2)))
	all, err = s.GetAll()
	require.NoError(t, err)
	assert.Equal(t, []journal.Date{"2025-06-15", "2025-06-14", "2025-06-13"}, dates(all))
}

func TestFileStoreCollapsesDuplicateDates(t *testing.T) {
	dir := t.TempDir()
	doc := `[
		{"date": "2025-06-14", "mood": 3, "stress": 2, "timestamp": "2025-06-14T08:00:00Z"},
		{"date": "2025-06-14", "mood": 8, "stress": 1, "timestamp": "2025-06-14T20:00:00Z"}
	]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, EntriesFile), []byte(doc), 0644))

	s := NewFileStore(dir, fixedClock())
	got, ok, err := s.Get("2025-06-14")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 8, got.Mood)

	// overwriting the date leaves exactly one record behind
	require.NoError(t, s.Save(testEntry("2025-06-14", 5, 2)))
	all, err := s.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 5, all[0].Mood)

	data, err := os.ReadFile(filepath.Join(dir, EntriesFile))
	require.NoError(t, err)
	raw, skipped, err := journal.DecodeRecords(data)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Len(t, raw, 1)
}

func TestFileStoreRejectsNonArrayDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, EntriesFile), []byte(`{"oops": true}`), 0644))

	s := NewFileStore(dir, fixedClock())
	_, err := s.GetAll()
	assert.Error(t, err)
	assert.Error(t, s.Save(testEntry("2025-06-15", 5, 2)))
}

func TestFileStoreConcurrentSaves(t *testing.T) {
	s := NewFileStore(t.TempDir(), fixedClock())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			date := fmt.Sprintf("2025-06-%02d", 1+i%10)
			assert.NoError(t, s.Save(testEntry(date, 1+i%10, 1+i%4)))
		}(i)
	}
	wg.Wait()

	all, err := s.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 10)
}

func TestOpenSelectsBackend(t *testing.T) {
	dir := t.TempDir()

	s, closeFn, err := Open(Options{Backend: BackendJSON, DataDir: dir, Clock: fixedClock()})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)
	require.NoError(t, closeFn())

	s, closeFn, err = Open(Options{Backend: BackendSQLite, DataDir: dir, Clock: fixedClock()})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	require.NoError(t, closeFn())
	assert.FileExists(t, filepath.Join(dir, SQLiteFile))

	_, closeFn, err = Open(Options{Backend: "postgres", DataDir: dir})
	assert.Error(t, err)
	assert.NotNil(t, closeFn)
}

func TestClockCutoff(t *testing.T) {
	c := fixedClock()
	assert.Equal(t, journal.Date("2025-06-15"), c.Today())

	cutoff, err := c.Cutoff(7)
	require.NoError(t, err)
	assert.Equal(t, journal.Date("2025-06-08"), cutoff)

	tokyo := Clock{
		Now:      func() time.Time { return time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC) },
		Location: time.FixedZone("JST", 9*60*60),
	}
	assert.Equal(t, journal.Date("2025-06-16"), tokyo.Today())
}
