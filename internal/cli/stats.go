package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Flyrell/checkin/internal/journal"
	"github.com/Flyrell/checkin/internal/stats"
	"github.com/Flyrell/checkin/internal/store"
	"github.com/spf13/cobra"
)

const topActivities = 5

var statsCmd = LeafCommand{
	Use:   "stats",
	Short: "Show averages, a weekday breakdown and top activities",
	IntFlags: []IntFlag{
		{Name: "days", Usage: "window in days (default: window_days from config)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			days, err := windowFlag(cmd, s.cfg)
			if err != nil {
				return err
			}
			return runStats(cmd, s.store, days)
		})
	},
}.Build()

func runStats(cmd *cobra.Command, st store.Store, days int) error {
	entries, err := st.GetLastNDays(days)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	summary, err := stats.Summarize(entries)
	if errors.Is(err, stats.ErrEmptyDataset) {
		_, _ = fmt.Fprintf(w, "Need more data to display analytics for the last %s. Keep tracking!\n", pluralDays(days))
		return nil
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("--- last %s: %d check-ins (%s to %s) ---",
		pluralDays(days), summary.Count, summary.From, summary.To)))

	avg := summary.Averages
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Average mood:  "),
		Mood(avg.MeanMood, fmt.Sprintf("%.1f/10 %s", avg.MeanMood, journal.MoodEmoji(avg.MeanMood))))
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Average sleep: "), Text(fmt.Sprintf("%.1f hrs", avg.MeanSleep)))
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Average stress:"), Text(fmt.Sprintf("%.1f/4", avg.MeanStress)))
	_, _ = fmt.Fprintln(w)

	printWeekly(w, summary.Weekly)

	if len(summary.Activities) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, headerStyle.Render("Top activities"))
		for i, a := range summary.Activities {
			if i == topActivities {
				break
			}
			_, _ = fmt.Fprintf(w, "  %s %s\n", padRight(a.Activity, 16), Silent(fmt.Sprintf("%d×", a.Count)))
		}
	}
	return nil
}

func printWeekly(w io.Writer, weekly stats.Weekly) {
	_, _ = fmt.Fprintln(w, headerStyle.Render(
		padRight("Day", 5)+" | "+padLeft("Mood", 9)+" | "+padLeft("Sleep", 6)+" | "+padLeft("Stress", 6)+" | "+padLeft("N", 3)))
	_, _ = fmt.Fprintln(w, strings.Repeat("-", 5)+"-+-"+strings.Repeat("-", 9)+"-+-"+strings.Repeat("-", 6)+"-+-"+strings.Repeat("-", 6)+"-+-"+strings.Repeat("-", 3))
	for _, b := range weekly {
		mood := Mood(b.MeanMood, padLeft(fmt.Sprintf("%s %.1f", b.Level().Emoji(), b.MeanMood), 9))
		_, _ = fmt.Fprintf(w, "%s | %s | %s | %s | %s\n",
			padRight(b.Name, 5),
			mood,
			padLeft(fmt.Sprintf("%.1f", b.MeanSleep), 6),
			padLeft(fmt.Sprintf("%.1f", b.MeanStress), 6),
			padLeft(fmt.Sprintf("%d", b.Count), 3),
		)
	}
}
