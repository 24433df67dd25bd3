package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/teambition/rrule-go"
)

// DefaultCadence expects a check-in every day.
const DefaultCadence = "every day"

var everyNWeeks = regexp.MustCompile(`^every (\d+) weeks?$`)

// Cadence is the recurrence on which check-ins are expected.
type Cadence struct {
	text string
	opts rrule.ROption
}

func (c Cadence) String() string { return c.text }

// Options returns the recurrence options the cadence expands from.
func (c Cadence) Options() rrule.ROption { return c.opts }

// ParseCadence parses a natural language or raw RRULE cadence.
func ParseCadence(s string) (Cadence, error) {
	text := strings.TrimSpace(s)
	r, err := parseRecurrence(text)
	if err != nil {
		return Cadence{}, err
	}
	return Cadence{text: text, opts: r.OrigOptions}, nil
}

func parseRecurrence(s string) (*rrule.RRule, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	// Raw RRULE passthrough
	if isRawRRule(s) {
		raw := strings.ToUpper(s)
		raw = strings.TrimPrefix(raw, "RRULE:")
		r, err := rrule.StrToRRule(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RRULE %q: %w", raw, err)
		}
		return r, nil
	}

	switch s {
	case "every day", "daily":
		return rrule.NewRRule(rrule.ROption{
			Freq: rrule.DAILY,
		})

	case "every weekday", "weekdays":
		return rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
		})

	case "every weekend", "weekends":
		return rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rrule.SA, rrule.SU},
		})

	case "every other day":
		return rrule.NewRRule(rrule.ROption{
			Freq:     rrule.DAILY,
			Interval: 2,
		})
	}

	if rest, ok := strings.CutPrefix(s, "every "); ok {
		// "every N weeks"
		if m := everyNWeeks.FindStringSubmatch(s); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid interval in %q", s)
			}
			return rrule.NewRRule(rrule.ROption{
				Freq:     rrule.WEEKLY,
				Interval: n,
			})
		}

		if wds, ok := rruleWeekdayList(rest); ok {
			return rrule.NewRRule(rrule.ROption{
				Freq:      rrule.WEEKLY,
				Byweekday: wds,
			})
		}
	}

	return nil, fmt.Errorf("unrecognized cadence %q", s)
}

func isRawRRule(s string) bool {
	upper := strings.ToUpper(s)
	return strings.HasPrefix(upper, "RRULE:") || strings.HasPrefix(upper, "FREQ=")
}

var rruleWeekdays = map[string]rrule.Weekday{
	"sunday":    rrule.SU,
	"monday":    rrule.MO,
	"tuesday":   rrule.TU,
	"wednesday": rrule.WE,
	"thursday":  rrule.TH,
	"friday":    rrule.FR,
	"saturday":  rrule.SA,
}

// rruleWeekdayList parses "monday", "monday and thursday" or
// "monday, wednesday and friday".
func rruleWeekdayList(s string) ([]rrule.Weekday, bool) {
	s = strings.ReplaceAll(s, " and ", ",")
	var out []rrule.Weekday
	for _, part := range strings.Split(s, ",") {
		wd, ok := rruleWeekdays[strings.TrimSpace(part)]
		if !ok {
			return nil, false
		}
		out = append(out, wd)
	}
	return out, len(out) > 0
}
