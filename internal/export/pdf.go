package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Flyrell/checkin/internal/journal"
	"github.com/Flyrell/checkin/internal/stats"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// Report is the input of the PDF export.
type Report struct {
	Title   string
	From    journal.Date
	To      journal.Date
	Entries []journal.Entry
}

// WritePDF renders a wellness report: the window, averages, weekly
// breakdown, top activities and every entry newest first.
func WritePDF(w io.Writer, r Report) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	title := r.Title
	if title == "" {
		title = "Wellness report"
	}
	m.AddRow(14,
		text.NewCol(12, title, props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("%s to %s", r.From, r.To), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4)

	summary, err := stats.Summarize(r.Entries)
	if err != nil {
		m.AddRow(10, text.NewCol(12, "Not enough data for this period.", props.Text{
			Size:  11,
			Color: &pdfMutedColor,
		}))
	} else {
		addSummary(m, summary)
		addEntries(m, r.Entries)
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}
	_, err = w.Write(doc.GetBytes())
	return err
}

func addSummary(m core.Maroto, s stats.Summary) {
	sectionHeader(m, "Averages")
	metricRow(m, "Check-ins", fmt.Sprintf("%d", s.Count))
	metricRow(m, "Mood", fmt.Sprintf("%.1f / 10 (%s)", s.Averages.MeanMood, journal.MoodLevelOf(s.Averages.MeanMood)))
	metricRow(m, "Sleep", fmt.Sprintf("%.1f hrs", s.Averages.MeanSleep))
	metricRow(m, "Stress", fmt.Sprintf("%.1f / 4", s.Averages.MeanStress))
	m.AddRow(4)

	sectionHeader(m, "By weekday")
	for _, b := range s.Weekly {
		m.AddRow(6,
			text.NewCol(3, "  "+b.Name, props.Text{Size: 9}),
			text.NewCol(3, fmt.Sprintf("mood %.1f", b.MeanMood), props.Text{Size: 9}),
			text.NewCol(3, fmt.Sprintf("sleep %.1f", b.MeanSleep), props.Text{Size: 9}),
			text.NewCol(3, fmt.Sprintf("%d entries", b.Count), props.Text{
				Size:  9,
				Align: align.Right,
				Color: &pdfMutedColor,
			}),
		)
	}
	m.AddRow(4)

	if len(s.Activities) > 0 {
		sectionHeader(m, "Activities")
		for _, a := range s.Activities {
			metricRow(m, a.Activity, fmt.Sprintf("%d", a.Count))
		}
		m.AddRow(4)
	}
}

func addEntries(m core.Maroto, entries []journal.Entry) {
	sorted := append([]journal.Entry(nil), entries...)
	journal.SortNewestFirst(sorted)

	sectionHeader(m, "Entries")
	for _, e := range sorted {
		stress, _ := journal.StressLabel(e.Stress)
		m.AddRow(6,
			text.NewCol(4, "  "+e.Date.Time().Format("Mon, Jan 2 2006"), props.Text{
				Style: fontstyle.Bold,
				Size:  9,
			}),
			text.NewCol(8, fmt.Sprintf("mood %d, sleep %s hrs, stress %s",
				e.Mood, formatSleep(e.Sleep), stress), props.Text{
				Size:  9,
				Align: align.Right,
			}),
		)
		if len(e.Activities) > 0 {
			m.AddRow(5, text.NewCol(12, "    "+strings.Join(e.Activities, ", "), props.Text{
				Size:  8,
				Color: &pdfMutedColor,
			}))
		}
		if e.Journal != "" {
			m.AddRow(5, text.NewCol(12, "    "+e.Journal, props.Text{
				Size:  8,
				Color: &pdfMutedColor,
			}))
		}
	}
}

func sectionHeader(m core.Maroto, title string) {
	m.AddRow(8, text.NewCol(12, title, props.Text{
		Style: fontstyle.Bold,
		Size:  11,
		Color: &pdfHeaderColor,
	}))
}

func metricRow(m core.Maroto, label, value string) {
	m.AddRow(6,
		text.NewCol(9, "  "+label, props.Text{Size: 9}),
		text.NewCol(3, value, props.Text{Size: 9, Align: align.Right}),
	)
}

func formatSleep(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
