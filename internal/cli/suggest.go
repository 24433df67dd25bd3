package cli

import (
	"fmt"

	"github.com/Flyrell/checkin/internal/store"
	"github.com/Flyrell/checkin/internal/suggest"
	"github.com/spf13/cobra"
)

var suggestCmd = LeafCommand{
	Use:   "suggest [mood]",
	Short: "Suggest something for a mood (default: today's check-in)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		picker := suggest.NewPicker(nil)
		if len(args) > 0 {
			mood, err := parseMood(args[0])
			if err != nil {
				return err
			}
			return runSuggest(cmd, nil, store.Clock{}, &mood, picker)
		}
		return withSession(func(s *session) error {
			return runSuggest(cmd, s.store, s.clock, nil, picker)
		})
	},
}.Build()

// runSuggest picks a suggestion for mood, or for today's check-in when mood
// is nil.
func runSuggest(cmd *cobra.Command, st store.Store, clock store.Clock, mood *int, picker *suggest.Picker) error {
	w := cmd.OutOrStdout()

	if mood == nil {
		today := clock.Today()
		e, ok, err := st.Get(today)
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintf(w, "no entry for %s; run `checkin add` first or pass a mood\n", today)
			return nil
		}
		mood = &e.Mood
	}

	if *mood < 1 || *mood > 10 {
		return fmt.Errorf("mood must be between 1 and 10, got %d", *mood)
	}
	_, _ = fmt.Fprintln(w, Text(picker.Pick(*mood)))
	return nil
}
