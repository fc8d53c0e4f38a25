// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse recovers the two-level section structure of package-manager
// help output from indentation and casing alone. Main sections sit at column
// zero in non-lowercase text; action items are indented by exactly two spaces
// and only count while the parser is inside the tracked (ACTIONS) region.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/helpsplit/pkg/types"
)

// ReadLines consumes r in full and returns its lines with original line
// terminators preserved. Extraction later re-joins raw lines, so nothing is
// trimmed here. Empty input yields an empty slice.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
	}
}

var (
	// separatorPattern matches ruler lines like ==== or ---- that would
	// otherwise pass the no-lowercase header test.
	separatorPattern = regexp.MustCompile(`^[=\-]+$`)

	// actionNamePattern extracts the action's short name: a word token,
	// hyphens allowed after the first character.
	actionNamePattern = regexp.MustCompile(`^\w[\w-]*`)
)

// Parse classifies every line in a single pass and returns the discovered
// structure. Line numbers are 1-based. Malformed input never errors; the
// worst case is under- or over-segmentation.
func Parse(lines []string, cfg types.ParseConfig) *types.Structure {
	exit := make(map[string]bool, len(cfg.ExitSections))
	for _, name := range cfg.ExitSections {
		exit[name] = true
	}

	st := types.NewStructure()
	inTracked := false

	for i, line := range lines {
		lineNo := i + 1
		content := strings.TrimRightFunc(line, unicode.IsSpace)

		// Main headers are tested first: their zero indentation also fails
		// the action prefix test, so the two rules cannot collide.
		if isMainHeader(line, content) {
			rec := &types.SectionRecord{
				Name:      content,
				Kind:      types.KindMain,
				StartLine: lineNo,
			}
			st.Main = append(st.Main, rec)
			st.Put(rec)

			if content == cfg.TriggerSection {
				inTracked = true
			} else if inTracked && exit[content] {
				inTracked = false
			}
			continue
		}

		if inTracked && hasActionIndent(line) {
			trimmed := strings.TrimSpace(content)
			if trimmed == "" {
				continue
			}
			name := actionNamePattern.FindString(trimmed)
			if name == "" {
				continue
			}
			rec := &types.SectionRecord{
				Name:      name,
				Kind:      types.KindAction,
				Label:     trimmed,
				StartLine: lineNo,
			}
			st.Actions = append(st.Actions, rec)
			st.Put(rec)
		}
	}

	return st
}

// isMainHeader reports whether the raw line is a main-section header: not
// indented, non-empty once right-trimmed, no lowercase letters, and not a
// separator ruler.
func isMainHeader(raw, content string) bool {
	if content == "" || strings.HasPrefix(raw, " ") {
		return false
	}
	if strings.ContainsFunc(content, unicode.IsLower) {
		return false
	}
	return !separatorPattern.MatchString(content)
}

// hasActionIndent reports whether the raw line starts with exactly two
// spaces: two spaces present, third character (if any) not a space.
func hasActionIndent(raw string) bool {
	if !strings.HasPrefix(raw, "  ") {
		return false
	}
	return len(raw) < 3 || raw[2] != ' '
}
