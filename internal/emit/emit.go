// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package emit slices the original lines by computed section ranges and
// writes each extracted section to its own file, plus an optional
// structure report.
package emit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/helpsplit/pkg/types"
)

const actionsDir = "actions"

// Summary holds counts from one emission run.
type Summary struct {
	Written int
	Skipped int
	Failed  int
}

// Total returns the number of records considered.
func (s Summary) Total() int {
	return s.Written + s.Skipped + s.Failed
}

// HasFailures reports whether any file failed to write.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Emit writes one file per extractable record: actions under
// OutputDir/actions/, the configured options section directly under
// OutputDir, everything else skipped. Existing files are overwritten.
// Per-file progress goes to w. The default is best-effort: a failed write
// is counted and reported but does not stop the run; with cfg.Strict the
// first failure aborts.
func Emit(st *types.Structure, lines []string, cfg types.EmitConfig, w io.Writer) (Summary, error) {
	if err := os.MkdirAll(filepath.Join(cfg.OutputDir, actionsDir), 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating output directories: %w", err)
	}

	var summary Summary

	for _, rec := range st.Records() {
		filename := SanitizeName(rec.Name) + ".txt"

		var path string
		switch {
		case rec.Kind == types.KindAction:
			path = filepath.Join(cfg.OutputDir, actionsDir, filename)
		case rec.Name == cfg.OptionsSection:
			path = filepath.Join(cfg.OutputDir, filename)
		default:
			summary.Skipped++
			continue
		}

		content := sectionContent(lines, rec)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			if cfg.Strict {
				return summary, fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Fprintf(w, "failed  %s: %v\n", rec.Name, err)
			summary.Failed++
			continue
		}

		fmt.Fprintf(w, "wrote %s (lines %d-%d) to %s\n", rec.Name, rec.StartLine, rec.EndLine, path)
		summary.Written++
	}

	return summary, nil
}

// sectionContent slices rec's 1-based inclusive range out of lines, drops
// trailing blank lines, and re-joins the raw lines so original terminators
// survive. An empty or inverted range yields an empty string.
func sectionContent(lines []string, rec *types.SectionRecord) string {
	start := rec.StartLine - 1
	end := rec.EndLine
	if end > len(lines) {
		end = len(lines)
	}
	if start < 0 || start >= end {
		return ""
	}

	part := lines[start:end]
	for len(part) > 0 && strings.TrimSpace(part[len(part)-1]) == "" {
		part = part[:len(part)-1]
	}
	return strings.Join(part, "")
}
