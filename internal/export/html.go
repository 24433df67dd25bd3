package export

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/Flyrell/checkin/internal/journal"
	"github.com/Flyrell/checkin/internal/stats"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var htmlPage = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; color: #333; }
h1, h2 { color: #334E8C; }
table { border-collapse: collapse; }
th, td { padding: 0.25rem 0.75rem; border-bottom: 1px solid #ddd; text-align: left; }
blockquote { color: #777; margin-left: 1rem; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

type htmlPageData struct {
	Title string
	Body  template.HTML
}

// WriteHTML renders the report as a standalone HTML page. The body is
// composed as Markdown and converted with goldmark; raw HTML inside notes
// is dropped by the renderer.
func WriteHTML(w io.Writer, r Report) error {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	var body bytes.Buffer
	if err := md.Convert([]byte(ReportMarkdown(r)), &body); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	return htmlPage.Execute(w, htmlPageData{
		Title: reportTitle(r),
		Body:  template.HTML(body.String()),
	})
}

// ReportMarkdown returns the report as a Markdown document.
func ReportMarkdown(r Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", escapeMarkdown(reportTitle(r)))
	fmt.Fprintf(&b, "_%s to %s_\n\n", r.From, r.To)

	summary, err := stats.Summarize(r.Entries)
	if err != nil {
		b.WriteString("Not enough data for this period.\n")
		return b.String()
	}

	avg := summary.Averages
	b.WriteString("## Averages\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Check-ins | %d |\n", summary.Count)
	fmt.Fprintf(&b, "| Mood | %.1f / 10 (%s) |\n", avg.MeanMood, journal.MoodLevelOf(avg.MeanMood))
	fmt.Fprintf(&b, "| Sleep | %.1f hrs |\n", avg.MeanSleep)
	fmt.Fprintf(&b, "| Stress | %.1f / 4 |\n\n", avg.MeanStress)

	b.WriteString("## By weekday\n\n")
	b.WriteString("| Day | Mood | Sleep | Stress | Check-ins |\n|---|---|---|---|---|\n")
	for _, wd := range summary.Weekly {
		fmt.Fprintf(&b, "| %s | %.1f | %.1f | %.1f | %d |\n", wd.Name, wd.MeanMood, wd.MeanSleep, wd.MeanStress, wd.Count)
	}
	b.WriteString("\n")

	if len(summary.Activities) > 0 {
		b.WriteString("## Activities\n\n")
		for _, a := range summary.Activities {
			fmt.Fprintf(&b, "- %s: %d\n", escapeMarkdown(a.Activity), a.Count)
		}
		b.WriteString("\n")
	}

	sorted := append([]journal.Entry(nil), r.Entries...)
	journal.SortNewestFirst(sorted)

	b.WriteString("## Entries\n\n")
	for _, e := range sorted {
		stress, _ := journal.StressLabel(e.Stress)
		fmt.Fprintf(&b, "### %s\n\n", e.Date.Time().Format("Monday, January 2, 2006"))
		fmt.Fprintf(&b, "- Mood: %d/10\n", e.Mood)
		fmt.Fprintf(&b, "- Sleep: %s hrs\n", formatSleep(e.Sleep))
		fmt.Fprintf(&b, "- Stress: %s\n", stress)
		if len(e.Activities) > 0 {
			fmt.Fprintf(&b, "- Activities: %s\n", escapeMarkdown(strings.Join(e.Activities, ", ")))
		}
		if e.Journal != "" {
			b.WriteString("\n")
			for _, line := range strings.Split(e.Journal, "\n") {
				fmt.Fprintf(&b, "> %s\n", escapeMarkdown(line))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func reportTitle(r Report) string {
	if r.Title == "" {
		return "Wellness report"
	}
	return r.Title
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
	"|", `\|`,
	"<", `\<`,
	">", `\>`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
