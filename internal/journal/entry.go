package journal

import (
	"strings"
	"time"

	"github.com/Flyrell/checkin/internal/stringutil"
)

const (
	MinMood   = 1
	MaxMood   = 10
	MinStress = 1
	MaxStress = 4
)

// Entry is one day's wellness record. Date is the primary key.
type Entry struct {
	Date       Date      `json:"date" yaml:"date" validate:"required,date"`
	Mood       int       `json:"mood" yaml:"mood" validate:"min=1,max=10"`
	Sleep      float64   `json:"sleep" yaml:"sleep" validate:"finite,gte=0"`
	Stress     int       `json:"stress" yaml:"stress" validate:"required,min=1,max=4"`
	Journal    string    `json:"journal" yaml:"journal"`
	Activities []string  `json:"activities" yaml:"activities"`
	Timestamp  time.Time `json:"timestamp" yaml:"timestamp"`
}

// Input is the raw payload a caller collects before an Entry exists.
// Stress is a pointer so "not selected" is distinguishable from a value.
type Input struct {
	Date       Date
	Mood       int
	Sleep      float64
	Stress     *int
	Journal    string
	Activities []string
}

// New builds and validates an Entry from input. The timestamp is set to now
// in UTC; activities are normalized into a sorted set of tag identifiers and
// CRLF line breaks in the journal become LF.
func New(in Input, now time.Time) (Entry, error) {
	e := Entry{
		Date:       in.Date,
		Mood:       in.Mood,
		Sleep:      in.Sleep,
		Journal:    strings.ReplaceAll(in.Journal, "\r\n", "\n"),
		Activities: stringutil.NormalizeTags(in.Activities),
		Timestamp:  now.UTC(),
	}
	if in.Stress != nil {
		e.Stress = *in.Stress
	}
	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// HasActivity reports whether tag is among the entry's activities.
func (e Entry) HasActivity(tag string) bool {
	for _, a := range e.Activities {
		if a == tag {
			return true
		}
	}
	return false
}
