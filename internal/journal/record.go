package journal

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// record is the persisted shape of an Entry. Older records may lack
// sleep, stress, journal or activities; those decode to zero values.
type record struct {
	Date       string   `json:"date"`
	Mood       int      `json:"mood"`
	Sleep      float64  `json:"sleep"`
	Stress     int      `json:"stress"`
	Journal    string   `json:"journal"`
	Activities []string `json:"activities"`
	Timestamp  string   `json:"timestamp"`
}

// SkippedRecord describes a persisted record that could not be decoded.
type SkippedRecord struct {
	Index  int
	Reason string
}

// DecodeRecords parses a persisted collection. Individual malformed records
// are skipped and reported; only a document that is not a JSON array fails.
// Dates are unique in the result: of several records for one date the one
// with the newest timestamp wins, ties going to the earlier record, and the
// others are reported as skipped.
func DecodeRecords(data []byte) ([]Entry, []SkippedRecord, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("entry collection is not a JSON array: %w", err)
	}

	entries := make([]Entry, 0, len(raw))
	var skipped []SkippedRecord
	type kept struct{ pos, index int }
	byDate := make(map[Date]kept, len(raw))
	for i, msg := range raw {
		var r record
		if err := json.Unmarshal(msg, &r); err != nil {
			skipped = append(skipped, SkippedRecord{Index: i, Reason: err.Error()})
			continue
		}
		date, err := ParseDate(r.Date)
		if err != nil {
			skipped = append(skipped, SkippedRecord{Index: i, Reason: err.Error()})
			continue
		}

		e := Entry{
			Date:       date,
			Mood:       r.Mood,
			Sleep:      r.Sleep,
			Stress:     r.Stress,
			Journal:    r.Journal,
			Activities: r.Activities,
		}
		if e.Activities == nil {
			e.Activities = []string{}
		}
		if r.Timestamp != "" {
			if ts, err := time.Parse(time.RFC3339Nano, r.Timestamp); err == nil {
				e.Timestamp = ts
			}
		}
		if prev, ok := byDate[date]; ok {
			if e.Timestamp.After(entries[prev.pos].Timestamp) {
				skipped = append(skipped, SkippedRecord{Index: prev.index, Reason: "duplicate record for " + string(date)})
				entries[prev.pos] = e
				byDate[date] = kept{pos: prev.pos, index: i}
			} else {
				skipped = append(skipped, SkippedRecord{Index: i, Reason: "duplicate record for " + string(date)})
			}
			continue
		}
		byDate[date] = kept{pos: len(entries), index: i}
		entries = append(entries, e)
	}
	return entries, skipped, nil
}

// EncodeRecords serializes entries as the persisted collection, newest first.
func EncodeRecords(entries []Entry) ([]byte, error) {
	sorted := append([]Entry(nil), entries...)
	SortNewestFirst(sorted)

	records := make([]record, 0, len(sorted))
	for _, e := range sorted {
		activities := e.Activities
		if activities == nil {
			activities = []string{}
		}
		r := record{
			Date:       string(e.Date),
			Mood:       e.Mood,
			Sleep:      e.Sleep,
			Stress:     e.Stress,
			Journal:    e.Journal,
			Activities: activities,
		}
		if !e.Timestamp.IsZero() {
			r.Timestamp = e.Timestamp.UTC().Format(time.RFC3339Nano)
		}
		records = append(records, r)
	}
	return json.MarshalIndent(records, "", "  ")
}

// SortNewestFirst sorts entries in place by date, descending.
func SortNewestFirst(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
}

// SortOldestFirst sorts entries in place by date, ascending.
func SortOldestFirst(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
}
