package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Flyrell/checkin/internal/journal"
	"github.com/Flyrell/checkin/internal/schedule"
	"github.com/Flyrell/checkin/internal/store"
	"github.com/Flyrell/checkin/internal/streak"
	"github.com/Flyrell/checkin/internal/stringutil"
	"github.com/Flyrell/checkin/internal/suggest"
	"github.com/spf13/cobra"
)

// commonActivities are offered when activities are picked interactively.
var commonActivities = []string{"exercise", "meditation", "social", "reading", "outdoors", "hobby", "work", "screen-time"}

// addInput carries the raw flag values of `checkin add`. Empty strings mean
// the flag was not given.
type addInput struct {
	date       string
	mood       string
	sleep      string
	stress     string
	note       string
	activities string
	noteSet    bool
	actsSet    bool
}

var addCmd = LeafCommand{
	Use:   "add",
	Short: "Record today's check-in (or another day's with --date)",
	Example: `  checkin add --mood 7 --sleep 7.5 --stress low --activities exercise,reading
  checkin add --date yesterday --mood 4 --stress 3 --note "long day"`,
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "overwrite an existing check-in without asking"},
	},
	StrFlags: []StringFlag{
		{Name: "date", Usage: "day to record (today, yesterday, monday, 2025-06-15, ...)"},
		{Name: "mood", Usage: "mood from 1 (very low) to 10 (very good)"},
		{Name: "sleep", Usage: "hours slept, e.g. 7.5"},
		{Name: "stress", Usage: "stress 1-4 or low, moderate, high, very-high"},
		{Name: "note", Usage: "free-form journal note"},
		{Name: "activities", Usage: "comma-separated activity tags"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		in := addInput{}
		in.date, _ = cmd.Flags().GetString("date")
		in.mood, _ = cmd.Flags().GetString("mood")
		in.sleep, _ = cmd.Flags().GetString("sleep")
		in.stress, _ = cmd.Flags().GetString("stress")
		in.note, _ = cmd.Flags().GetString("note")
		in.activities, _ = cmd.Flags().GetString("activities")
		in.noteSet = cmd.Flags().Changed("note")
		in.actsSet = cmd.Flags().Changed("activities")
		yesFlag, _ := cmd.Flags().GetBool("yes")

		pk := DefaultPromptKit()
		if yesFlag {
			pk.Confirm = AlwaysYes()
		}
		return withSession(func(s *session) error {
			return runAdd(cmd, s.store, s.clock, in, pk, suggest.NewPicker(nil))
		})
	},
}.Build()

func runAdd(
	cmd *cobra.Command,
	st store.Store,
	clock store.Clock,
	in addInput,
	pk PromptKit,
	picker *suggest.Picker,
) error {
	w := cmd.OutOrStdout()
	today := clock.Today()

	// 1. Resolve the day
	dayExpr := in.date
	if dayExpr == "" {
		dayExpr = "today"
	}
	date, err := schedule.ParseDay(dayExpr, today)
	if err != nil {
		return err
	}
	if date.After(today) {
		return fmt.Errorf("cannot check in for %s: it is in the future", date)
	}

	// 2. Start from the existing check-in so a partial update keeps the rest
	existing, found, err := st.Get(date)
	if err != nil {
		return err
	}
	input := journal.Input{Date: date}
	if found {
		input.Mood = existing.Mood
		input.Sleep = existing.Sleep
		// legacy records may carry stress 0, which must be asked for again
		if existing.Stress >= journal.MinStress && existing.Stress <= journal.MaxStress {
			stress := existing.Stress
			input.Stress = &stress
		}
		input.Journal = existing.Journal
		input.Activities = existing.Activities
	}

	// 3. Apply flags, prompting for what is mandatory and still missing
	guided := false
	if in.mood != "" {
		if input.Mood, err = parseMood(in.mood); err != nil {
			return err
		}
	} else if !found {
		if input.Mood, err = promptMood(pk); err != nil {
			return err
		}
		guided = true
	}

	if in.stress != "" {
		level, err := parseStress(in.stress)
		if err != nil {
			return err
		}
		input.Stress = &level
	} else if input.Stress == nil {
		level, err := promptStress(pk)
		if err != nil {
			return err
		}
		input.Stress = &level
	}

	if in.sleep == "" && guided {
		if in.sleep, err = pk.Prompt("Hours of sleep (leave empty to skip)"); err != nil {
			return err
		}
	}
	if in.sleep != "" {
		if input.Sleep, err = parseSleep(in.sleep); err != nil {
			return err
		}
	}

	if in.actsSet {
		input.Activities = stringutil.SplitList(in.activities)
	} else if guided {
		picked, err := pk.MultiSelect("Activities today", commonActivities)
		if err != nil {
			return err
		}
		for _, i := range picked {
			if i >= 0 && i < len(commonActivities) {
				input.Activities = append(input.Activities, commonActivities[i])
			}
		}
	}

	if in.noteSet {
		input.Journal = in.note
	} else if guided {
		if input.Journal, err = pk.Prompt("Journal note (optional)"); err != nil {
			return err
		}
	}

	entry, err := journal.New(input, clock.Now())
	if err != nil {
		return err
	}

	// 4. Confirm before replacing another check-in
	if found {
		ok, err := pk.Confirm(fmt.Sprintf("Replace the check-in for %s?", formatLongDate(date)))
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(w, "cancelled")
			return nil
		}
	}

	// 5. Save
	if err := st.Save(entry); err != nil {
		return err
	}

	verb := "saved"
	if found {
		verb = "updated"
	}
	_, _ = fmt.Fprintf(w, "%s check-in for %s\n", Info(verb), Primary(formatLongDate(date)))
	_, _ = fmt.Fprintf(w, "  %s  %s  %s\n", moodText(entry.Mood), Text(formatSleep(entry.Sleep)), Stress(entry.Stress, stressText(entry.Stress)))

	// 6. Streak and suggestion
	n, err := streak.Calculate(st, today)
	if err != nil {
		return err
	}
	if n > 0 {
		_, _ = fmt.Fprintf(w, "%s %s\n", Silent("streak:"), Primary("🔥 "+pluralDays(n)))
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("suggestion:"), Text(picker.Pick(entry.Mood)))
	return nil
}

// Range checks are left to entry validation; these only parse.

func parseMood(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid mood %q (expected a whole number from %d to %d)", s, journal.MinMood, journal.MaxMood)
	}
	return v, nil
}

func parseSleep(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid sleep %q (expected hours, e.g. 7.5)", s)
	}
	return v, nil
}

var stressNames = map[string]int{
	"low":       1,
	"moderate":  2,
	"high":      3,
	"very high": 4,
	"very-high": 4,
	"veryhigh":  4,
}

func parseStress(s string) (int, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if level, ok := stressNames[key]; ok {
		return level, nil
	}
	v, err := strconv.Atoi(key)
	if err != nil {
		return 0, fmt.Errorf("invalid stress %q (expected 1-4 or low, moderate, high, very-high)", s)
	}
	return v, nil
}

func promptMood(pk PromptKit) (int, error) {
	options := make([]string, 0, journal.MaxMood)
	for v := journal.MaxMood; v >= journal.MinMood; v-- {
		options = append(options, fmt.Sprintf("%2d  %s", v, journal.MoodEmoji(float64(v))))
	}
	idx, err := pk.Select("How are you feeling today?", options)
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= len(options) {
		return 0, fmt.Errorf("invalid mood selection")
	}
	return journal.MaxMood - idx, nil
}

func promptStress(pk PromptKit) (int, error) {
	options := make([]string, 0, journal.MaxStress)
	for level := journal.MinStress; level <= journal.MaxStress; level++ {
		options = append(options, stressText(level))
	}
	idx, err := pk.Select("Stress level", options)
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= len(options) {
		return 0, fmt.Errorf("invalid stress selection")
	}
	return journal.MinStress + idx, nil
}
