package cli

import (
	"fmt"

	"github.com/Flyrell/checkin/internal/store"
	"github.com/Flyrell/checkin/internal/stringutil"
	"github.com/spf13/cobra"
)

var historyCmd = LeafCommand{
	Use:   "history",
	Short: "List recent check-ins, newest first",
	IntFlags: []IntFlag{
		{Name: "days", Usage: "how many days back to show (default: window_days from config)"},
	},
	StrFlags: []StringFlag{
		{Name: "activity", Usage: "only show check-ins tagged with this activity"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		activity, _ := cmd.Flags().GetString("activity")
		return withSession(func(s *session) error {
			days, err := windowFlag(cmd, s.cfg)
			if err != nil {
				return err
			}
			return runHistory(cmd, s.store, days, activity)
		})
	},
}.Build()

func runHistory(cmd *cobra.Command, st store.Store, days int, activity string) error {
	entries, err := st.GetLastNDays(days)
	if err != nil {
		return err
	}

	activity = stringutil.Slugify(activity)
	w := cmd.OutOrStdout()
	shown := 0
	for _, e := range entries {
		if activity != "" && !e.HasActivity(activity) {
			continue
		}
		if shown > 0 {
			_, _ = fmt.Fprintln(w)
		}
		printEntry(w, e)
		shown++
	}

	if shown == 0 {
		_, _ = fmt.Fprintln(w, "No entries yet. Start tracking your wellness today!")
	}
	return nil
}
