package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Flyrell/checkin/internal/schedule"
	"github.com/Flyrell/checkin/internal/store"
	"github.com/spf13/cobra"
)

const calendarCellWidth = 4

var calendarCmd = LeafCommand{
	Use:   "calendar",
	Short: "Show which days had a check-in against the configured cadence",
	IntFlags: []IntFlag{
		{Name: "days", Usage: "window in days (default: window_days from config)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			days, err := windowFlag(cmd, s.cfg)
			if err != nil {
				return err
			}
			cadence, err := s.cfg.ParsedCadence()
			if err != nil {
				return err
			}
			return runCalendar(cmd, s.store, s.clock, days, cadence)
		})
	},
}.Build()

func runCalendar(cmd *cobra.Command, st store.Store, clock store.Clock, days int, cadence schedule.Cadence) error {
	// 1. Resolve the window
	from, err := clock.Cutoff(days)
	if err != nil {
		return err
	}
	to := clock.Today()

	// 2. Load entries and lay out the days
	entries, err := st.GetLastNDays(days)
	if err != nil {
		return err
	}
	cal, err := schedule.Calendar(entries, cadence, from, to)
	if err != nil {
		return err
	}

	// 3. Render
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s to %s (%s)", from, to, cadence)))
	printCalendarGrid(w, cal)

	kept, expected := schedule.Adherence(cal)
	_, _ = fmt.Fprintln(w)
	if expected == 0 {
		_, _ = fmt.Fprintln(w, Silent("no check-ins expected in this window"))
		return nil
	}
	pct := kept * 100 / expected
	_, _ = fmt.Fprintf(w, "%s %d of %d expected check-ins (%d%%)\n", Primary("kept"), kept, expected, pct)
	return nil
}

// printCalendarGrid prints the days as Sunday-first week rows.
func printCalendarGrid(w io.Writer, cal []schedule.Day) {
	var header strings.Builder
	for d := time.Sunday; d <= time.Saturday; d++ {
		header.WriteString(padRight(d.String()[:3], calendarCellWidth))
	}
	_, _ = fmt.Fprintln(w, Silent(strings.TrimRight(header.String(), " ")))

	if len(cal) == 0 {
		return
	}

	var row strings.Builder
	lead := int(cal[0].Date.Weekday())
	row.WriteString(strings.Repeat(" ", lead*calendarCellWidth))
	for i, day := range cal {
		row.WriteString(padRight(calendarMark(day), calendarCellWidth))
		if day.Date.Weekday() == time.Saturday || i == len(cal)-1 {
			_, _ = fmt.Fprintln(w, strings.TrimRight(row.String(), " "))
			row.Reset()
		}
	}
}

func calendarMark(d schedule.Day) string {
	switch d.Status() {
	case schedule.Done:
		return Primary("✓")
	case schedule.Missed:
		return Error("✗")
	default:
		return Silent("·")
	}
}
