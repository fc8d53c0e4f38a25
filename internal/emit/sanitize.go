// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"regexp"
	"strings"
)

var (
	nonWordChars   = regexp.MustCompile(`[^\w\-.]`)
	underscoreRuns = regexp.MustCompile(`_+`)
)

// SanitizeName maps a section name to a filesystem-safe lowercase token:
// every character outside [\w\-.] becomes an underscore, runs of
// underscores collapse to one, leading/trailing underscores and trailing
// dots are stripped. Deterministic; distinct names can collide (e.g.
// "a b" and "a_b"), which is accepted.
func SanitizeName(name string) string {
	s := nonWordChars.ReplaceAllString(name, "_")
	s = underscoreRuns.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	s = strings.TrimRight(s, ".")
	return strings.ToLower(s)
}
