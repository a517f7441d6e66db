package services

import (
	"regexp"
	"strings"
)

var (
	parentHeading    = regexp.MustCompile(`^[A-Z]\.|^[IVXLC]+\.`)
	childHeading     = regexp.MustCompile(`^\d+\.\d+|^[a-z]\)`)
	ambiguousHeading = regexp.MustCompile(`^\d+\.`)
)

// HeadingKind classifies a heading row.
type HeadingKind int

const (
	HeadingNone HeadingKind = iota
	HeadingParent
	HeadingChild
	HeadingAmbiguous
)

// ClassifyHeading matches trimmed heading text against the section patterns
// in priority order: parent, child, ambiguous.
func ClassifyHeading(text string) HeadingKind {
	switch {
	case parentHeading.MatchString(text):
		return HeadingParent
	case childHeading.MatchString(text):
		return HeadingChild
	case ambiguousHeading.MatchString(text):
		return HeadingAmbiguous
	}
	return HeadingNone
}

// IsHeading reports whether r is a section heading rather than a line item.
func IsHeading(r Row) bool {
	return r.Quantity == 0 && r.Rate == 0
}

// sectionState is the running parent/child context of the scan.
type sectionState struct {
	parent string
	child  string
}

func (s *sectionState) apply(text string) {
	switch ClassifyHeading(text) {
	case HeadingParent:
		s.parent, s.child = text, ""
	case HeadingChild:
		s.child = text
	case HeadingAmbiguous:
		if s.parent == "" {
			s.parent, s.child = text, ""
		} else {
			s.child = text
		}
	}
}

// label renders the current section. A child seen before any parent is kept
// with an empty parent part.
func (s sectionState) label() string {
	if s.child != "" {
		return s.parent + " : " + s.child
	}
	return s.parent
}

// SectionLabels computes the section label of every row in one forward
// pass. The label of row i depends only on rows 0..i.
func SectionLabels(t Table) []string {
	var state sectionState
	labels := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		if IsHeading(r) {
			if text := strings.TrimSpace(t.Description(r)); text != "" {
				state.apply(text)
			}
		}
		labels[i] = state.label()
	}
	return labels
}

// BuildSections stamps every line item with its section label and removes
// all heading rows, classified or not.
func BuildSections(t Table) Table {
	labels := SectionLabels(t)
	out := Table{
		Columns:     t.Columns,
		Mapping:     t.Mapping,
		HasSections: true,
		Rows:        make([]Row, 0, len(t.Rows)),
	}
	for i, r := range t.Rows {
		if IsHeading(r) {
			continue
		}
		r.Section = labels[i]
		out.Rows = append(out.Rows, r)
	}
	return out
}
