// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/helpsplit/internal/emit"
	"github.com/pdiddy/helpsplit/internal/index"
	"github.com/pdiddy/helpsplit/internal/parse"
	"github.com/pdiddy/helpsplit/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Parse help text and write per-section files",
	Long: `Extract reads help output from stdin (or --input), parses its section
structure, and writes the OPTIONS section plus one file per action to the
output directory:

  <output-dir>/options.txt
  <output-dir>/actions/<action>.txt

File writes are best-effort by default: a failed write is reported and the
remaining sections are still processed. Use --strict to abort on the first
failure. With --report a structure report is written alongside; with
--index-db the run is recorded in a SQLite history database.`,
	Example: `  tlmgr --help | helpsplit extract
  helpsplit extract --input help.txt --output-dir sections --report section_numbers.txt`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("input", "", "read help text from a file instead of stdin")
	extractCmd.Flags().String("output-dir", "", `base directory for section files (default "help_sections")`)
	extractCmd.Flags().String("report", "", "write a structure report to this path")
	extractCmd.Flags().String("report-format", "", `structure report format: text or yaml (default "text")`)
	extractCmd.Flags().Bool("strict", false, "abort on the first file write error")
	extractCmd.Flags().String("index-db", "", "record this run in a SQLite history database at this path")
	extractCmd.Flags().String("trigger", "", `main section that opens the action region (default "ACTIONS")`)
	extractCmd.Flags().String("options-section", "", `main section extracted to the base directory (default "OPTIONS")`)

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)

	in, cleanup, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	lines, err := parse.ReadLines(in)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Loaded %d lines\n", len(lines))

	st := parse.Parse(lines, cfg.Parse)
	parse.ComputeRanges(st, len(lines))
	fmt.Fprintf(os.Stderr, "Found %d main sections and %d action sections\n", len(st.Main), len(st.Actions))

	summary, err := emit.Emit(st, lines, cfg.Emit, os.Stdout)
	if err != nil {
		return err
	}

	if err := emit.WriteReport(st, len(lines), cfg.Emit, time.Now()); err != nil {
		if cfg.Emit.Strict {
			return err
		}
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	} else if cfg.Emit.ReportPath != "" {
		fmt.Fprintf(os.Stderr, "Wrote structure report to %s\n", cfg.Emit.ReportPath)
	}

	if cfg.Index.DBPath != "" {
		recordRun(cfg.Index.DBPath, st, len(lines), summary.Written)
	}

	fmt.Fprintf(os.Stderr, "Wrote %d file(s), skipped %d section(s), %d failure(s)\n",
		summary.Written, summary.Skipped, summary.Failed)

	if summary.HasFailures() {
		return fmt.Errorf("%d file(s) failed to write", summary.Failed)
	}
	return nil
}

// recordRun saves the run to the history database. Indexing is diagnostic,
// so a failure here warns and moves on rather than failing the extraction.
func recordRun(dbPath string, st *types.Structure, totalLines, filesWritten int) {
	store, err := index.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open index %s: %v\n", dbPath, err)
		return
	}
	defer store.Close()

	id, err := store.RecordRun(context.Background(), st, totalLines, filesWritten)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "Recorded run %s in %s\n", id, dbPath)
}

// openInput returns the help-text stream: the --input file when set,
// stdin otherwise. The cleanup func closes the file (a no-op for stdin).
func openInput(cmd *cobra.Command) (io.Reader, func(), error) {
	path, _ := cmd.Flags().GetString("input")
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

// pipelineConfig resolves the effective configuration: defaults, then
// config file / environment via viper, then flags.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	cfg := types.DefaultPipelineConfig()

	if v := viper.GetString("parse.trigger_section"); v != "" {
		cfg.Parse.TriggerSection = v
	}
	if v := viper.GetStringSlice("parse.exit_sections"); len(v) > 0 {
		cfg.Parse.ExitSections = v
	}
	if v := viper.GetString("emit.output_dir"); v != "" {
		cfg.Emit.OutputDir = v
	}
	if v := viper.GetString("emit.options_section"); v != "" {
		cfg.Emit.OptionsSection = v
	}
	if v := viper.GetString("emit.report_path"); v != "" {
		cfg.Emit.ReportPath = v
	}
	if v := viper.GetString("emit.report_format"); v != "" {
		cfg.Emit.ReportFormat = types.ReportFormat(v)
	}
	if viper.IsSet("emit.strict") {
		cfg.Emit.Strict = viper.GetBool("emit.strict")
	}
	if v := viper.GetString("index.db_path"); v != "" {
		cfg.Index.DBPath = v
	}

	if v, _ := cmd.Flags().GetString("trigger"); v != "" {
		cfg.Parse.TriggerSection = v
	}
	if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
		cfg.Emit.OutputDir = v
	}
	if v, _ := cmd.Flags().GetString("options-section"); v != "" {
		cfg.Emit.OptionsSection = v
	}
	if v, _ := cmd.Flags().GetString("report"); v != "" {
		cfg.Emit.ReportPath = v
	}
	if v, _ := cmd.Flags().GetString("report-format"); v != "" {
		cfg.Emit.ReportFormat = types.ReportFormat(v)
	}
	if v, _ := cmd.Flags().GetBool("strict"); v {
		cfg.Emit.Strict = true
	}
	if v, _ := cmd.Flags().GetString("index-db"); v != "" {
		cfg.Index.DBPath = v
	}

	return cfg
}
