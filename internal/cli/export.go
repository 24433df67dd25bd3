package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Flyrell/checkin/internal/export"
	"github.com/Flyrell/checkin/internal/store"
	"github.com/spf13/cobra"
)

// stdoutTarget as --output writes the export to standard output.
const stdoutTarget = "-"

var exportCmd = LeafCommand{
	Use:   "export",
	Short: "Export check-ins as CSV, JSON, YAML or a PDF/HTML report",
	Example: `  checkin export
  checkin export --format pdf --days 90 --output ~/Documents
  checkin export --format json --output - | jq .`,
	IntFlags: []IntFlag{
		{Name: "days", Usage: "window in days (default: window_days from config)"},
	},
	StrFlags: []StringFlag{
		{Name: "format", Usage: export.FormatList(), Default: string(export.CSV)},
		{Name: "output", Usage: "output directory, or - for stdout (default: export_dir from config)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		formatFlag, _ := cmd.Flags().GetString("format")
		format, err := export.ParseFormat(formatFlag)
		if err != nil {
			return err
		}
		return withSession(func(s *session) error {
			days, err := windowFlag(cmd, s.cfg)
			if err != nil {
				return err
			}
			output := s.cfg.ExportDir
			if cmd.Flags().Changed("output") {
				output, _ = cmd.Flags().GetString("output")
			}
			return runExport(cmd, s.store, s.clock, days, format, output)
		})
	},
}.Build()

func runExport(cmd *cobra.Command, st store.Store, clock store.Clock, days int, format export.Format, output string) error {
	// 1. Resolve the window and load entries
	from, err := clock.Cutoff(days)
	if err != nil {
		return err
	}
	today := clock.Today()
	entries, err := st.GetLastNDays(days)
	if err != nil {
		return err
	}

	report := export.Report{
		Title: "Wellness report",
		From:  from,
		To:    today,
	}

	// 2. Stream to stdout when asked
	if output == stdoutTarget {
		return export.Write(cmd.OutOrStdout(), format, entries, report)
	}

	// 3. Write the file
	if err := os.MkdirAll(output, 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(output, export.FileName(today, format))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := export.Write(f, format, entries, report); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s export: %w", format, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Debug("export written", "path", path, "format", format, "entries", len(entries))

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %d check-ins to %s\n", Primary("exported"), len(entries), Info(path))
	return nil
}
