// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/helpsplit/internal/emit"
	"github.com/pdiddy/helpsplit/internal/parse"
	"github.com/pdiddy/helpsplit/pkg/types"
)

var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Print the parsed section structure without writing files",
	Long: `Structure parses help output the same way extract does and prints the
resulting structure report to stdout: every main section and action with
its line number, plus totals. Nothing is written to disk.`,
	RunE: runStructure,
}

func init() {
	structureCmd.Flags().String("input", "", "read help text from a file instead of stdin")
	structureCmd.Flags().String("format", "", `report format: text or yaml (default "text")`)
	structureCmd.Flags().String("trigger", "", `main section that opens the action region (default "ACTIONS")`)

	rootCmd.AddCommand(structureCmd)
}

func runStructure(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)
	if v, _ := cmd.Flags().GetString("format"); v != "" {
		cfg.Emit.ReportFormat = types.ReportFormat(v)
	}

	in, cleanup, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	lines, err := parse.ReadLines(in)
	if err != nil {
		return err
	}

	st := parse.Parse(lines, cfg.Parse)
	parse.ComputeRanges(st, len(lines))

	report, err := emit.RenderReport(st, len(lines), cfg.Emit.ReportFormat, time.Now())
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(report)
	return err
}
