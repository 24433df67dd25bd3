package cli

import (
	"fmt"

	"github.com/Flyrell/checkin/internal/store"
	"github.com/Flyrell/checkin/internal/streak"
	"github.com/spf13/cobra"
)

var streakCmd = LeafCommand{
	Use:   "streak",
	Short: "Show the current and longest check-in streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			return runStreak(cmd, s.store, s.clock)
		})
	},
}.Build()

func runStreak(cmd *cobra.Command, st store.Store, clock store.Clock) error {
	entries, err := st.GetAll()
	if err != nil {
		return err
	}

	today := clock.Today()
	current := streak.Current(entries, today)
	best := streak.Longest(entries)

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Current streak:"), Primary("🔥 "+pluralDays(current)))
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Longest streak:"), Text(pluralDays(best)))

	if current == 0 {
		if _, ok, err := st.Get(today.AddDays(-1)); err == nil && ok {
			_, _ = fmt.Fprintln(w, Warning("Check in today to keep yesterday's streak going."))
		}
	}
	return nil
}
