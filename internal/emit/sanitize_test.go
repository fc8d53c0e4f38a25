// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "OPTIONS", "options"},
		{"spaces become underscores", "AUTHORS AND COPYRIGHT", "authors_and_copyright"},
		{"punctuation becomes underscores", "GUI FOR TLMGR!", "gui_for_tlmgr"},
		{"underscore runs collapse", "A  /  B", "a_b"},
		{"leading and trailing underscores stripped", "*NOTE*", "note"},
		{"trailing dots stripped", "ETC...", "etc"},
		{"hyphen and dot kept", "restore-backup.v2", "restore-backup.v2"},
		{"already clean", "update", "update"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeName(tt.in))
		})
	}
}

// Sanitized names contain only [a-z0-9._-] and never start or end with an
// underscore, whatever goes in.
func TestSanitizeNameAlphabet(t *testing.T) {
	allowed := regexp.MustCompile(`^[a-z0-9._-]*$`)
	inputs := []string{
		"OPTIONS", "MACHINE-READABLE OUTPUT", "foo/bar", "a  b   c",
		"__weird__", "dots...", "MIXED case-Name", "(parens) [brackets]",
		"tab\there", "trailing space ",
	}

	for _, in := range inputs {
		got := SanitizeName(in)
		assert.True(t, allowed.MatchString(got), "%q -> %q", in, got)
		assert.False(t, strings.HasPrefix(got, "_"), "%q -> %q", in, got)
		assert.False(t, strings.HasSuffix(got, "_"), "%q -> %q", in, got)
		assert.Equal(t, got, SanitizeName(in), "deterministic for %q", in)
	}
}
