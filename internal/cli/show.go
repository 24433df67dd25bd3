package cli

import (
	"fmt"

	"github.com/Flyrell/checkin/internal/schedule"
	"github.com/Flyrell/checkin/internal/store"
	"github.com/spf13/cobra"
)

var showCmd = LeafCommand{
	Use:   "show [day]",
	Short: "Show the check-in for a day (default: today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day := "today"
		if len(args) > 0 {
			day = args[0]
		}
		return withSession(func(s *session) error {
			return runShow(cmd, s.store, s.clock, day)
		})
	},
}.Build()

func runShow(cmd *cobra.Command, st store.Store, clock store.Clock, day string) error {
	date, err := schedule.ParseDay(day, clock.Today())
	if err != nil {
		return err
	}

	e, ok, err := st.Get(date)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if !ok {
		_, _ = fmt.Fprintf(w, "no entry for %s\n", date)
		return nil
	}
	printEntry(w, e)
	return nil
}
