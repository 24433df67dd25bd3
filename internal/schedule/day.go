package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Flyrell/checkin/internal/journal"
)

var daysAgo = regexp.MustCompile(`^(\d+) days? ago$`)

// ParseDay resolves a day expression relative to today. Check-ins describe
// days already lived, so weekday names resolve backwards.
// Supports: "today", "yesterday", "3 days ago", "monday" (most recent,
// today included), "last monday" (strictly before today), "2024-01-15",
// "Jan 2", "Jan 2 2006", "January 2", "January 2 2006", "2 Jan",
// "2 Jan 2006", "2 January", "2 January 2006".
func ParseDay(s string, today journal.Date) (journal.Date, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimSpace(strings.TrimPrefix(s, "on "))

	switch s {
	case "today":
		return today, nil
	case "yesterday":
		return today.AddDays(-1), nil
	}

	if m := daysAgo.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return "", fmt.Errorf("unrecognized day %q", s)
		}
		return today.AddDays(-n), nil
	}

	if rest, ok := strings.CutPrefix(s, "last "); ok {
		if wd, ok := parseWeekday(rest); ok {
			return previousWeekday(today.AddDays(-1), wd), nil
		}
	}
	if wd, ok := parseWeekday(s); ok {
		return previousWeekday(today, wd), nil
	}

	layouts := []string{
		"2006-01-02",
		"Jan 2",
		"Jan 2 2006",
		"January 2",
		"January 2 2006",
		"2 Jan",
		"2 Jan 2006",
		"2 January",
		"2 January 2006",
	}

	year := today.Time().Year()
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			// For layouts without a year, use the current year
			if !hasYear(layout) {
				month, day := t.Month(), t.Day()
				t = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
				if t.Month() != month || t.Day() != day {
					return "", fmt.Errorf("%s %d does not exist in %d", month, day, year)
				}
			}
			return journal.DateOf(t, time.UTC), nil
		}
	}

	return "", fmt.Errorf("unrecognized day %q", s)
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sun":       time.Sunday,
	"mon":       time.Monday,
	"tue":       time.Tuesday,
	"wed":       time.Wednesday,
	"thu":       time.Thursday,
	"fri":       time.Friday,
	"sat":       time.Saturday,
}

func parseWeekday(s string) (time.Weekday, bool) {
	wd, ok := weekdays[s]
	return wd, ok
}

// previousWeekday returns the latest date on or before from that falls on wd.
func previousWeekday(from journal.Date, wd time.Weekday) journal.Date {
	back := int(from.Weekday()) - int(wd)
	if back < 0 {
		back += 7
	}
	return from.AddDays(-back)
}

func hasYear(layout string) bool {
	return strings.Contains(layout, "2006")
}
