// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SectionKind distinguishes top-level headings from action sub-items.
type SectionKind string

const (
	KindMain   SectionKind = "main"
	KindAction SectionKind = "action"
)

// SectionRecord is one section discovered in the help text. StartLine and
// EndLine are 1-based and inclusive; EndLine is zero until ranges are
// computed.
type SectionRecord struct {
	// Name is the section's key: the trimmed heading for main sections,
	// the leading word token for actions.
	Name string `json:"name" yaml:"name"`

	// Kind is main or action.
	Kind SectionKind `json:"kind" yaml:"kind"`

	// Label is the full trimmed header line. Set for actions only; the
	// structure report shows it verbatim.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// StartLine is the line the section header appears on.
	StartLine int `json:"start_line" yaml:"start_line"`

	// EndLine is the last line attributed to the section.
	EndLine int `json:"end_line" yaml:"end_line"`
}

// Structure holds everything one parse pass discovered: main sections and
// actions in encounter order, plus a combined name-keyed mapping used for
// range computation and extraction.
type Structure struct {
	// Main lists main-section records in encounter order.
	Main []*SectionRecord

	// Actions lists action records in encounter order. Duplicate action
	// names appear here once per occurrence even though the mapping keeps
	// only the last.
	Actions []*SectionRecord

	order  []string
	byName map[string]*SectionRecord
}

// NewStructure returns an empty Structure.
func NewStructure() *Structure {
	return &Structure{byName: make(map[string]*SectionRecord)}
}

// Put inserts rec into the combined mapping under rec.Name. A duplicate
// name overwrites the earlier record but keeps its original position in
// the iteration order (last write wins, first insertion places).
func (s *Structure) Put(rec *SectionRecord) {
	if _, ok := s.byName[rec.Name]; !ok {
		s.order = append(s.order, rec.Name)
	}
	s.byName[rec.Name] = rec
}

// Get returns the record for name, or nil.
func (s *Structure) Get(name string) *SectionRecord {
	return s.byName[name]
}

// Records returns the combined mapping's records in insertion order. The
// slice is freshly allocated; callers may reorder it.
func (s *Structure) Records() []*SectionRecord {
	recs := make([]*SectionRecord, len(s.order))
	for i, name := range s.order {
		recs[i] = s.byName[name]
	}
	return recs
}

// Len reports the number of distinct section names.
func (s *Structure) Len() int {
	return len(s.order)
}
