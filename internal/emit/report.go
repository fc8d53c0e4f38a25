// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/helpsplit/pkg/types"
)

// reportSection is one row of the YAML structure report.
type reportSection struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label,omitempty"`
	Line  int    `yaml:"line"`
}

// yamlReport is the machine-readable structure report.
type yamlReport struct {
	MainSections []reportSection `yaml:"main_sections"`
	Actions      []reportSection `yaml:"actions"`
	TotalMain    int             `yaml:"total_main_sections"`
	TotalActions int             `yaml:"total_actions"`
	TotalLines   int             `yaml:"total_lines"`
	GeneratedAt  string          `yaml:"generated_at"`
}

// RenderReport formats the diagnostic structure report: every main section
// and action in encounter order with line numbers, plus totals and a
// generation stamp. Supported formats are text and yaml.
func RenderReport(st *types.Structure, totalLines int, format types.ReportFormat, now time.Time) ([]byte, error) {
	switch format {
	case types.ReportText, "":
		return renderTextReport(st, now), nil
	case types.ReportYAML:
		return renderYAMLReport(st, totalLines, now)
	default:
		return nil, fmt.Errorf("unsupported report format %q: use text or yaml", format)
	}
}

// WriteReport renders the report and writes it to cfg.ReportPath. A no-op
// when no path is configured.
func WriteReport(st *types.Structure, totalLines int, cfg types.EmitConfig, now time.Time) error {
	if cfg.ReportPath == "" {
		return nil
	}
	data, err := RenderReport(st, totalLines, cfg.ReportFormat, now)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.ReportPath, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func renderTextReport(st *types.Structure, now time.Time) []byte {
	var out []string

	title := "HELP TEXT SECTION STRUCTURE"
	out = append(out, title, strings.Repeat("=", len(title)), "")

	out = append(out, "MAIN SECTIONS:", strings.Repeat("-", len("MAIN SECTIONS:")))
	for _, rec := range st.Main {
		out = append(out, fmt.Sprintf("Line %-4d: %s", rec.StartLine, rec.Name))
	}
	out = append(out, "")

	out = append(out, "ACTIONS SUBSECTIONS:", strings.Repeat("-", len("ACTIONS SUBSECTIONS:")))
	for _, rec := range st.Actions {
		out = append(out, fmt.Sprintf("Line %-4d: %s", rec.StartLine, rec.Label))
	}
	out = append(out, "")

	out = append(out, "SUMMARY:", strings.Repeat("-", len("SUMMARY:")))
	out = append(out, fmt.Sprintf("Total main sections: %d", len(st.Main)))
	out = append(out, fmt.Sprintf("Total actions: %d", len(st.Actions)))
	out = append(out, "")
	out = append(out, fmt.Sprintf("Generated on: %s", now.Format("January 2, 2006")))

	return []byte(strings.Join(out, "\n") + "\n")
}

func renderYAMLReport(st *types.Structure, totalLines int, now time.Time) ([]byte, error) {
	report := yamlReport{
		MainSections: make([]reportSection, 0, len(st.Main)),
		Actions:      make([]reportSection, 0, len(st.Actions)),
		TotalMain:    len(st.Main),
		TotalActions: len(st.Actions),
		TotalLines:   totalLines,
		GeneratedAt:  now.Format(time.RFC3339),
	}
	for _, rec := range st.Main {
		report.MainSections = append(report.MainSections, reportSection{Name: rec.Name, Line: rec.StartLine})
	}
	for _, rec := range st.Actions {
		report.Actions = append(report.Actions, reportSection{Name: rec.Name, Label: rec.Label, Line: rec.StartLine})
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("marshaling YAML report: %w", err)
	}
	return data, nil
}
