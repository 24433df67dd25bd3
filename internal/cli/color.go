package cli

import (
	"github.com/Flyrell/checkin/internal/journal"
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#667EEA"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CFCF"))
	silentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	textStyle    = lipgloss.NewStyle()
	headerStyle  = lipgloss.NewStyle().Bold(true)
	footerStyle  = lipgloss.NewStyle().Faint(true)
)

func Primary(text string) string { return primaryStyle.Render(text) }
func Error(text string) string   { return errorStyle.Render(text) }
func Warning(text string) string { return warningStyle.Render(text) }
func Info(text string) string    { return infoStyle.Render(text) }
func Silent(text string) string  { return silentStyle.Render(text) }
func Text(text string) string    { return textStyle.Render(text) }

// mood levels from very low to very good
var moodColors = [...]lipgloss.Color{"#E74C3C", "#E67E22", "#F1C40F", "#2ECC71", "#27AE60"}

// stress 1..4
var stressColors = [...]lipgloss.Color{"#27AE60", "#F1C40F", "#E67E22", "#E74C3C"}

// Mood renders text in the colour of the mood level of v.
func Mood(v float64, text string) string {
	l := journal.MoodLevelOf(v)
	return lipgloss.NewStyle().Foreground(moodColors[l]).Render(text)
}

// Stress renders text in the colour of a stress level; unknown levels are
// left unstyled.
func Stress(level int, text string) string {
	if level < journal.MinStress || level > journal.MaxStress {
		return text
	}
	return lipgloss.NewStyle().Foreground(stressColors[level-1]).Render(text)
}
