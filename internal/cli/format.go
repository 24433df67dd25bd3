package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Flyrell/checkin/internal/journal"
	"github.com/charmbracelet/lipgloss"
)

func formatSleep(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64) + " hrs"
}

func formatLongDate(d journal.Date) string {
	return d.Time().Format("Monday, January 2, 2006")
}

func stressText(level int) string {
	label, ok := journal.StressLabel(level)
	if !ok {
		return "unknown"
	}
	return label + " " + journal.StressEmoji(level)
}

func moodText(mood int) string {
	return Mood(float64(mood), fmt.Sprintf("%s %d/10", journal.MoodEmoji(float64(mood)), mood))
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// printEntry writes the multi-line history card of an entry.
func printEntry(w io.Writer, e journal.Entry) {
	_, _ = fmt.Fprintln(w, Primary(formatLongDate(e.Date)))
	_, _ = fmt.Fprintf(w, "  %s %s\n", Silent("Mood:  "), moodText(e.Mood))
	_, _ = fmt.Fprintf(w, "  %s %s\n", Silent("Sleep: "), Text(formatSleep(e.Sleep)))
	_, _ = fmt.Fprintf(w, "  %s %s\n", Silent("Stress:"), Stress(e.Stress, stressText(e.Stress)))
	if len(e.Activities) > 0 {
		_, _ = fmt.Fprintf(w, "  %s %s\n", Silent("Activities:"), Text(strings.Join(e.Activities, ", ")))
	}
	if e.Journal != "" {
		_, _ = fmt.Fprintf(w, "  %s %q\n", Silent("Notes:"), e.Journal)
	}
}

// padRight pads s to width display cells; longer text is returned as is.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// padLeft right-aligns s in width display cells.
func padLeft(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}
