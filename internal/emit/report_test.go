// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/helpsplit/pkg/types"
)

func TestRenderReportText(t *testing.T) {
	st, lines := parseSample(t, helpSample)
	now := time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)

	data, err := RenderReport(st, len(lines), types.ReportText, now)
	require.NoError(t, err)
	report := string(data)

	assert.Contains(t, report, "HELP TEXT SECTION STRUCTURE")
	assert.Contains(t, report, "MAIN SECTIONS:")
	assert.Contains(t, report, "Line 3   : ACTIONS")
	assert.Contains(t, report, "ACTIONS SUBSECTIONS:")
	assert.Contains(t, report, "Line 4   : update [pkg]")
	assert.Contains(t, report, "Line 7   : restore-backup old")
	assert.Contains(t, report, "Total main sections: 4")
	assert.Contains(t, report, "Total actions: 2")
	assert.Contains(t, report, "Generated on: August 27, 2026")
}

func TestRenderReportYAML(t *testing.T) {
	st, lines := parseSample(t, helpSample)
	now := time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)

	data, err := RenderReport(st, len(lines), types.ReportYAML, now)
	require.NoError(t, err)

	var got yamlReport
	require.NoError(t, yaml.Unmarshal(data, &got))

	assert.Equal(t, 4, got.TotalMain)
	assert.Equal(t, 2, got.TotalActions)
	assert.Equal(t, len(lines), got.TotalLines)
	assert.Equal(t, "2026-08-27T12:00:00Z", got.GeneratedAt)

	require.Len(t, got.Actions, 2)
	assert.Equal(t, "update", got.Actions[0].Name)
	assert.Equal(t, "update [pkg]", got.Actions[0].Label)
	assert.Equal(t, 4, got.Actions[0].Line)
}

func TestRenderReportUnsupportedFormat(t *testing.T) {
	st, lines := parseSample(t, helpSample)
	_, err := RenderReport(st, len(lines), "xml", time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestRenderReportDefaultsToText(t *testing.T) {
	st, lines := parseSample(t, helpSample)
	data, err := RenderReport(st, len(lines), "", time.Now())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "HELP TEXT SECTION STRUCTURE"))
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	st, lines := parseSample(t, helpSample)

	cfg := testEmitConfig(dir)
	cfg.ReportPath = filepath.Join(dir, "section_numbers.txt")
	require.NoError(t, WriteReport(st, len(lines), cfg, time.Now()))

	data, err := os.ReadFile(cfg.ReportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SUMMARY:")
}

func TestWriteReportDisabledWithoutPath(t *testing.T) {
	st, lines := parseSample(t, helpSample)
	cfg := testEmitConfig(t.TempDir())
	assert.NoError(t, WriteReport(st, len(lines), cfg, time.Now()))
}
