// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/helpsplit/pkg/types"
)

func testParseConfig() types.ParseConfig {
	return types.ParseConfig{
		TriggerSection: "ACTIONS",
		ExitSections:   []string{"ENVIRONMENT VARIABLES", "USER MODE"},
	}
}

func mustLines(t *testing.T, input string) []string {
	t.Helper()
	lines, err := ReadLines(strings.NewReader(input))
	require.NoError(t, err)
	return lines
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "preserves terminators",
			input: "one\ntwo\n",
			want:  []string{"one\n", "two\n"},
		},
		{
			name:  "last line without newline",
			input: "one\ntwo",
			want:  []string{"one\n", "two"},
		},
		{
			name:  "keeps blank and whitespace lines",
			input: "a\n\n   \nb\n",
			want:  []string{"a\n", "\n", "   \n", "b\n"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := ReadLines(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, lines)
		})
	}
}

func TestParseMainHeaders(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMain []string
	}{
		{
			name:     "uppercase header at column zero",
			input:    "OPTIONS\n  --flag desc\n",
			wantMain: []string{"OPTIONS"},
		},
		{
			name:     "mixed case is not a header",
			input:    "Actions\nOPTIONS\n",
			wantMain: []string{"OPTIONS"},
		},
		{
			name:     "separator lines excluded",
			input:    "====================\nOPTIONS\n--------\n",
			wantMain: []string{"OPTIONS"},
		},
		{
			name:     "indented uppercase is not a header",
			input:    " OPTIONS\nOPTIONS\n",
			wantMain: []string{"OPTIONS"},
		},
		{
			name:     "header name keeps spaces and punctuation",
			input:    "AUTHORS AND COPYRIGHT\n",
			wantMain: []string{"AUTHORS AND COPYRIGHT"},
		},
		{
			name:     "trailing whitespace trimmed from name",
			input:    "OPTIONS   \n",
			wantMain: []string{"OPTIONS"},
		},
		{
			name:     "no lowercase test admits digits and punctuation",
			input:    "SEE ALSO: TLMGR(1)\n",
			wantMain: []string{"SEE ALSO: TLMGR(1)"},
		},
		{
			name:     "blank lines ignored",
			input:    "\n   \n\t\n",
			wantMain: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Parse(mustLines(t, tt.input), testParseConfig())
			var got []string
			for _, rec := range st.Main {
				got = append(got, rec.Name)
			}
			assert.Equal(t, tt.wantMain, got)
			for _, rec := range st.Main {
				assert.Equal(t, types.KindMain, rec.Kind)
			}
		})
	}
}

func TestParseTrackedRegion(t *testing.T) {
	input := "" +
		"INTRODUCTION\n" + // 1
		"  early indented line\n" + // 2: before trigger, not an action
		"ACTIONS\n" + // 3: opens region
		"  update [pkg]\n" + // 4: action
		"  install pkg...\n" + // 5: action
		"    continuation text\n" + // 6: four spaces, content
		"USER MODE\n" + // 7: closes region
		"  late indented line\n" // 8: after exit, not an action

	st := Parse(mustLines(t, input), testParseConfig())

	require.Len(t, st.Actions, 2)
	assert.Equal(t, "update", st.Actions[0].Name)
	assert.Equal(t, "update [pkg]", st.Actions[0].Label)
	assert.Equal(t, 4, st.Actions[0].StartLine)
	assert.Equal(t, "install", st.Actions[1].Name)
	assert.Equal(t, 5, st.Actions[1].StartLine)

	wantMain := []string{"INTRODUCTION", "ACTIONS", "USER MODE"}
	require.Len(t, st.Main, len(wantMain))
	for i, name := range wantMain {
		assert.Equal(t, name, st.Main[i].Name)
	}
}

// An unrecognized header inside the tracked region does not close it; only
// exit-set members do. The indented line under OPTIONS is still indented by
// exactly two spaces, but its leading token starts with a hyphen, so no
// action record is produced for it either.
func TestParseUnrecognizedHeaderKeepsRegionOpen(t *testing.T) {
	input := "" +
		"ACTIONS\n" +
		"  foo   does X\n" +
		"  bar   does Y\n" +
		"OPTIONS\n" +
		"  --flag  desc\n" +
		"  verbose  still captured\n"

	st := Parse(mustLines(t, input), testParseConfig())

	var names []string
	for _, rec := range st.Actions {
		names = append(names, rec.Name)
	}
	assert.Equal(t, []string{"foo", "bar", "verbose"}, names)
}

func TestParseActionIndentExactlyTwoSpaces(t *testing.T) {
	input := "" +
		"ACTIONS\n" +
		"  two spaces\n" +
		"   three spaces\n" +
		"    four spaces\n" +
		"\ttab indent\n" +
		" ONE SPACE\n" +
		"  \n" // two spaces then blank

	st := Parse(mustLines(t, input), testParseConfig())

	require.Len(t, st.Actions, 1)
	assert.Equal(t, "two", st.Actions[0].Name)
}

func TestParseActionNameToken(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantName string // empty means no record
	}{
		{"plain word", "  update some text", "update"},
		{"hyphenated", "  generate-language files", "generate-language"},
		{"digits", "  2to3 converter", "2to3"},
		{"leading hyphen skipped", "  --machine-readable", ""},
		{"leading punctuation skipped", "  (internal) helper", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Parse(mustLines(t, "ACTIONS\n"+tt.line+"\n"), testParseConfig())
			if tt.wantName == "" {
				assert.Empty(t, st.Actions)
				return
			}
			require.Len(t, st.Actions, 1)
			assert.Equal(t, tt.wantName, st.Actions[0].Name)
			assert.Equal(t, strings.TrimSpace(tt.line), st.Actions[0].Label)
		})
	}
}

func TestParseDuplicateActionLastWriteWins(t *testing.T) {
	input := "" +
		"ACTIONS\n" +
		"  foo alpha\n" +
		"  foo beta\n"

	st := Parse(mustLines(t, input), testParseConfig())

	// Both occurrences are reported in encounter order.
	require.Len(t, st.Actions, 2)
	assert.Equal(t, 2, st.Actions[0].StartLine)
	assert.Equal(t, 3, st.Actions[1].StartLine)

	// The mapping keeps only the second.
	rec := st.Get("foo")
	require.NotNil(t, rec)
	assert.Equal(t, 3, rec.StartLine)
	assert.Equal(t, "foo beta", rec.Label)
	assert.Equal(t, 2, st.Len())
}

func TestParseEmptyInput(t *testing.T) {
	st := Parse(nil, testParseConfig())
	assert.Empty(t, st.Main)
	assert.Empty(t, st.Actions)
	assert.Zero(t, st.Len())
}

func TestParseCustomTrigger(t *testing.T) {
	cfg := types.ParseConfig{
		TriggerSection: "COMMANDS",
		ExitSections:   []string{"FILES"},
	}
	input := "" +
		"COMMANDS\n" +
		"  fetch things\n" +
		"FILES\n" +
		"  not an action\n"

	st := Parse(mustLines(t, input), cfg)

	require.Len(t, st.Actions, 1)
	assert.Equal(t, "fetch", st.Actions[0].Name)
}
