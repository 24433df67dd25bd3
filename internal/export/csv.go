package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Flyrell/checkin/internal/journal"
)

// Header is the first row of every delimited export.
var Header = []string{"Date", "Mood", "Sleep (hrs)", "Stress", "Activities", "Notes"}

// ActivitySeparator joins activity tags inside the Activities column.
const ActivitySeparator = "; "

// Row is one parsed data row of a delimited export.
type Row struct {
	Date       journal.Date
	Mood       int
	Sleep      float64
	Stress     int
	Activities []string
	Notes      string
}

// ToDelimitedText renders entries as CSV in the order given.
func ToDelimitedText(entries []journal.Entry) string {
	var sb strings.Builder
	_ = WriteCSV(&sb, entries)
	return sb.String()
}

// WriteCSV writes the header and one row per entry. Every data field is
// quoted so notes containing commas, quotes or newlines survive intact.
func WriteCSV(w io.Writer, entries []journal.Entry) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(Header, ",") + "\n"); err != nil {
		return err
	}
	for _, e := range entries {
		fields := []string{
			string(e.Date),
			strconv.Itoa(e.Mood),
			strconv.FormatFloat(e.Sleep, 'f', -1, 64),
			strconv.Itoa(e.Stress),
			strings.Join(e.Activities, ActivitySeparator),
			e.Journal,
		}
		for i, f := range fields {
			if i > 0 {
				if err := bw.WriteByte(','); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(quote(f)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ParseDelimitedText reads an export produced by WriteCSV back into rows.
// Line breaks inside quoted notes come back as LF: a CRLF written into a note
// reads as a single "\n". Entries built with journal.New already use LF, so
// those round-trip unchanged.
func ParseDelimitedText(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty export: missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i, h := range Header {
		if header[i] != h {
			return nil, fmt.Errorf("unexpected header column %d: %q", i+1, header[i])
		}
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row, err := parseRow(rec)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(rec []string) (Row, error) {
	date, err := journal.ParseDate(rec[0])
	if err != nil {
		return Row{}, err
	}
	mood, err := strconv.Atoi(rec[1])
	if err != nil {
		return Row{}, fmt.Errorf("mood: %w", err)
	}
	sleep, err := strconv.ParseFloat(rec[2], 64)
	if err != nil {
		return Row{}, fmt.Errorf("sleep: %w", err)
	}
	stress, err := strconv.Atoi(rec[3])
	if err != nil {
		return Row{}, fmt.Errorf("stress: %w", err)
	}

	activities := []string{}
	if rec[4] != "" {
		activities = strings.Split(rec[4], ActivitySeparator)
	}

	return Row{
		Date:       date,
		Mood:       mood,
		Sleep:      sleep,
		Stress:     stress,
		Activities: activities,
		Notes:      rec[5],
	}, nil
}
