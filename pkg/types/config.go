// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ParseConfig holds the structural constants the parser keys on. The
// defaults match tlmgr's help output; other help-text formats with the
// same indentation conventions can override them in config.
type ParseConfig struct {
	// TriggerSection is the main section that opens the tracked region in
	// which two-space-indented lines are read as action headers.
	TriggerSection string `json:"trigger_section" yaml:"trigger_section"`

	// ExitSections are the main sections that close the tracked region.
	ExitSections []string `json:"exit_sections" yaml:"exit_sections"`
}

// ReportFormat selects the structure report output format.
type ReportFormat string

const (
	ReportText ReportFormat = "text"
	ReportYAML ReportFormat = "yaml"
)

// EmitConfig holds settings for section file emission.
type EmitConfig struct {
	// OutputDir is the base directory for section files (contains actions/).
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// OptionsSection is the one main section extracted directly under
	// OutputDir. Every other main section is skipped.
	OptionsSection string `json:"options_section" yaml:"options_section"`

	// ReportPath is where the structure report is written. Empty disables
	// the report.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`

	// ReportFormat selects text or yaml (default text).
	ReportFormat ReportFormat `json:"report_format" yaml:"report_format"`

	// Strict aborts on the first file write error instead of continuing
	// best-effort.
	Strict bool `json:"strict" yaml:"strict"`
}

// IndexConfig holds settings for the run-history index.
type IndexConfig struct {
	// DBPath is the SQLite database file. Empty disables indexing.
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Parse ParseConfig `json:"parse" yaml:"parse"`
	Emit  EmitConfig  `json:"emit" yaml:"emit"`
	Index IndexConfig `json:"index" yaml:"index"`
}

// DefaultPipelineConfig returns the tlmgr defaults: ACTIONS opens the
// tracked region, the sections that follow the action list close it, and
// output lands in help_sections/.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Parse: ParseConfig{
			TriggerSection: "ACTIONS",
			ExitSections: []string{
				"CONFIGURATION FILE FOR TLMGR",
				"CRYPTOGRAPHIC VERIFICATION",
				"USER MODE",
				"MULTIPLE REPOSITORIES",
				"GUI FOR TLMGR",
				"MACHINE-READABLE OUTPUT",
				"ENVIRONMENT VARIABLES",
				"AUTHORS AND COPYRIGHT",
			},
		},
		Emit: EmitConfig{
			OutputDir:      "help_sections",
			OptionsSection: "OPTIONS",
			ReportFormat:   ReportText,
		},
	}
}
