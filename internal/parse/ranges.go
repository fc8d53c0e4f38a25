// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"sort"

	"github.com/pdiddy/helpsplit/pkg/types"
)

// ComputeRanges assigns each record's end line: one before the next
// record's start in global start-line order, or totalLines for the last.
// The resulting ranges partition the input from the first header to the
// end without gaps or overlaps. The sort is stable, so records sharing a
// start line (a parser bug, not expected from real input) keep insertion
// order and the earlier one gets an empty range.
func ComputeRanges(st *types.Structure, totalLines int) {
	recs := st.Records()
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].StartLine < recs[j].StartLine
	})

	for i, rec := range recs {
		if i+1 < len(recs) {
			rec.EndLine = recs[i+1].StartLine - 1
		} else {
			rec.EndLine = totalLines
		}
	}
}
