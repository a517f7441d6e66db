package services

import "strconv"

// SectionLabel is the column label of the reconstructed section.
const SectionLabel = "Section"

// Row is one cleaned BOQ line. Values is aligned with Table.Columns; the
// Quantity and Rate cells hold the canonical text of the coerced numbers.
type Row struct {
	Values    []string
	Quantity  float64
	Rate      float64
	Section   string
	SourceRow int // 0-based row in the raw grid
}

// Table is an ordered set of cleaned rows over the selected columns.
type Table struct {
	Columns     []Column
	Mapping     FieldMapping
	Rows        []Row
	HasSections bool
}

// position returns the offset of grid column idx inside t.Columns.
func (t Table) position(idx int) int {
	for i, c := range t.Columns {
		if c.Index == idx {
			return i
		}
	}
	return -1
}

// Value returns the cell of r bound to field f.
func (t Table) Value(r Row, f Field) (string, bool) {
	idx, ok := t.Mapping.Column(f)
	if !ok {
		return "", false
	}
	pos := t.position(idx)
	if pos < 0 || pos >= len(r.Values) {
		return "", false
	}
	return r.Values[pos], true
}

// Description returns the description text of r.
func (t Table) Description(r Row) string {
	v, _ := t.Value(r, FieldDescription)
	return v
}

// Labels returns the output header: the selected column labels followed by
// the section column once sections were built.
func (t Table) Labels() []string {
	labels := make([]string, 0, len(t.Columns)+1)
	for _, c := range t.Columns {
		labels = append(labels, c.Label)
	}
	if t.HasSections {
		labels = append(labels, SectionLabel)
	}
	return labels
}

// Records returns the table as text rows in output column order.
func (t Table) Records() [][]string {
	out := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		rec := make([]string, 0, len(t.Columns)+1)
		rec = append(rec, r.Values...)
		if t.HasSections {
			rec = append(rec, r.Section)
		}
		out = append(out, rec)
	}
	return out
}

// Grid renders the table back into a raw grid whose first row is the header.
// The section column is not included so the result can be cleaned again with
// the same selection.
func (t Table) Grid() Grid {
	g := make(Grid, 0, len(t.Rows)+1)
	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c.Label
	}
	g = append(g, header)
	for _, r := range t.Rows {
		g = append(g, append([]string(nil), r.Values...))
	}
	return g
}

// GridSelection returns the columns and mapping that address t.Grid().
func (t Table) GridSelection() ([]Column, FieldMapping) {
	cols := make([]Column, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = Column{Index: i, Label: c.Label}
	}
	mapping := make(FieldMapping, len(t.Mapping))
	for f, idx := range t.Mapping {
		if pos := t.position(idx); pos >= 0 {
			mapping[f] = pos
		}
	}
	return cols, mapping
}

// formatNumber renders a coerced number without trailing zeros.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
