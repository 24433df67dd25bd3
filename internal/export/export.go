package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Flyrell/checkin/internal/journal"
	"gopkg.in/yaml.v3"
)

// Format is an export file format.
type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
	YAML Format = "yaml"
	PDF  Format = "pdf"
	HTML Format = "html"
)

// Formats lists every supported format in display order.
var Formats = []Format{CSV, JSON, YAML, PDF, HTML}

// ParseFormat accepts a format name case-insensitively; "yml" is an alias
// for YAML.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case CSV, JSON, YAML, PDF, HTML:
		return f, nil
	case "yml":
		return YAML, nil
	case "htm":
		return HTML, nil
	default:
		return "", fmt.Errorf("unknown export format %q (expected %s)", s, FormatList())
	}
}

// FormatList renders Formats for help text, e.g. "csv, json or pdf".
func FormatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	if len(names) < 2 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}

// FileName returns the conventional export file name for today.
func FileName(today journal.Date, format Format) string {
	return fmt.Sprintf("wellness-data-%s.%s", today, format)
}

// WriteJSON writes entries in the persisted record layout, newest first.
func WriteJSON(w io.Writer, entries []journal.Entry) error {
	data, err := journal.EncodeRecords(entries)
	if err != nil {
		return fmt.Errorf("encoding entries: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

type yamlEntry struct {
	Date       string   `yaml:"date"`
	Mood       int      `yaml:"mood"`
	Sleep      float64  `yaml:"sleep"`
	Stress     int      `yaml:"stress"`
	Journal    string   `yaml:"journal,omitempty"`
	Activities []string `yaml:"activities"`
	Timestamp  string   `yaml:"timestamp,omitempty"`
}

// WriteYAML writes entries as a YAML sequence in the order given.
func WriteYAML(w io.Writer, entries []journal.Entry) error {
	docs := make([]yamlEntry, 0, len(entries))
	for _, e := range entries {
		y := yamlEntry{
			Date:       string(e.Date),
			Mood:       e.Mood,
			Sleep:      e.Sleep,
			Stress:     e.Stress,
			Journal:    e.Journal,
			Activities: e.Activities,
		}
		if y.Activities == nil {
			y.Activities = []string{}
		}
		if !e.Timestamp.IsZero() {
			y.Timestamp = e.Timestamp.UTC().Format(time.RFC3339)
		}
		docs = append(docs, y)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// Write dispatches to the writer for format. Only the PDF and HTML reports
// use report, whose Entries are replaced by entries.
func Write(w io.Writer, format Format, entries []journal.Entry, report Report) error {
	switch format {
	case CSV:
		return WriteCSV(w, entries)
	case JSON:
		return WriteJSON(w, entries)
	case YAML:
		return WriteYAML(w, entries)
	case PDF:
		report.Entries = entries
		return WritePDF(w, report)
	case HTML:
		report.Entries = entries
		return WriteHTML(w, report)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}
