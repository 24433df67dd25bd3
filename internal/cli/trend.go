package cli

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/Flyrell/checkin/internal/stats"
	"github.com/Flyrell/checkin/internal/store"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Metric is one of the charted series.
type Metric int

const (
	MetricMood Metric = iota
	MetricSleep
	MetricStress
)

var metricNames = []string{"mood", "sleep", "stress"}

func (m Metric) String() string { return metricNames[m] }

func (m Metric) next() Metric { return (m + 1) % Metric(len(metricNames)) }

func parseMetric(s string) (Metric, error) {
	for i, name := range metricNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Metric(i), nil
		}
	}
	return 0, fmt.Errorf("unknown metric %q (supported: %s)", s, strings.Join(metricNames, ", "))
}

const (
	trendLabelWidth = 7
	minBarWidth     = 10
	defaultBarWidth = 40
	sleepScale      = 12.0
)

var trendCmd = LeafCommand{
	Use:   "trend",
	Short: "Chart mood, sleep or stress over time",
	IntFlags: []IntFlag{
		{Name: "days", Usage: "window in days (default: window_days from config)"},
	},
	StrFlags: []StringFlag{
		{Name: "metric", Usage: "series to chart first: mood, sleep or stress", Default: "mood"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		metricFlag, _ := cmd.Flags().GetString("metric")
		metric, err := parseMetric(metricFlag)
		if err != nil {
			return err
		}
		return withSession(func(s *session) error {
			days, err := windowFlag(cmd, s.cfg)
			if err != nil {
				return err
			}
			return runTrend(cmd, s.store, days, metric)
		})
	},
}.Build()

func runTrend(cmd *cobra.Command, st store.Store, days int, metric Metric) error {
	entries, err := st.GetLastNDays(days)
	if err != nil {
		return err
	}
	points := stats.ChronologicalSeries(entries)
	out := cmd.OutOrStdout()

	// Non-TTY fallback: print the chosen chart once
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		_, err := fmt.Fprint(out, renderTrend(points, metric, defaultBarWidth, days))
		return err
	}

	m := trendModel{points: points, metric: metric, days: days, termWidth: 80}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	_, err = p.Run()
	return err
}

type trendModel struct {
	points    []stats.Point
	metric    Metric
	days      int
	termWidth int
}

func (m trendModel) Init() tea.Cmd { return nil }

func (m trendModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.metric = m.metric.next()
		case "shift+tab", "left", "h":
			m.metric = (m.metric + Metric(len(metricNames)) - 1) % Metric(len(metricNames))
		case "m":
			m.metric = MetricMood
		case "s":
			m.metric = MetricSleep
		case "t":
			m.metric = MetricStress
		}
	}
	return m, nil
}

func (m trendModel) View() string {
	width := m.termWidth - trendLabelWidth - 12
	if width < minBarWidth {
		width = minBarWidth
	}
	if width > 80 {
		width = 80
	}
	var sb strings.Builder
	sb.WriteString(renderTrend(m.points, m.metric, width, m.days))
	sb.WriteString("\n")
	sb.WriteString(footerStyle.Render("tab: next metric · m/s/t: mood/sleep/stress · q: quit"))
	return sb.String()
}

// renderTrend draws one horizontal bar per check-in, oldest first.
func renderTrend(points []stats.Point, metric Metric, barWidth, days int) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%s trend, last %s", metricTitle(metric), pluralDays(days))))
	sb.WriteString("\n")

	if len(points) == 0 {
		sb.WriteString(Silent("No entries yet. Start tracking your wellness today!"))
		sb.WriteString("\n")
		return sb.String()
	}

	scale := metricScale(points, metric)
	for _, p := range points {
		v := metricValue(p, metric)
		n := int(math.Round(v / scale * float64(barWidth)))
		if n < 0 {
			n = 0
		}
		if n > barWidth {
			n = barWidth
		}
		bar := strings.Repeat("█", n) + strings.Repeat(" ", barWidth-n)
		label := p.Date.Time().Format("Jan 02")

		sb.WriteString(padRight(label, trendLabelWidth))
		sb.WriteString(Silent("│"))
		sb.WriteString(colorBar(p, metric, bar))
		sb.WriteString(" ")
		sb.WriteString(formatMetric(v, metric))
		sb.WriteString("\n")
	}
	return sb.String()
}

func metricTitle(m Metric) string {
	switch m {
	case MetricSleep:
		return "Sleep"
	case MetricStress:
		return "Stress"
	default:
		return "Mood"
	}
}

func metricValue(p stats.Point, m Metric) float64 {
	switch m {
	case MetricSleep:
		return p.Sleep
	case MetricStress:
		return float64(p.Stress)
	default:
		return float64(p.Mood)
	}
}

// metricScale is the value drawn as a full bar. Sleep grows past 12 hours
// when the data does.
func metricScale(points []stats.Point, m Metric) float64 {
	switch m {
	case MetricStress:
		return 4
	case MetricSleep:
		scale := sleepScale
		for _, p := range points {
			scale = math.Max(scale, p.Sleep)
		}
		return scale
	default:
		return 10
	}
}

func formatMetric(v float64, m Metric) string {
	switch m {
	case MetricSleep:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%d", int(v))
	}
}

func colorBar(p stats.Point, m Metric, bar string) string {
	switch m {
	case MetricMood:
		return Mood(float64(p.Mood), bar)
	case MetricStress:
		return Stress(p.Stress, bar)
	default:
		return Info(bar)
	}
}
