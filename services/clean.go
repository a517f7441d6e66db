package services

import (
	"fmt"
	"strings"
)

// DefaultRemoveKeywords drop summary and annotation rows from the data.
var DefaultRemoveKeywords = []string{"sub total", "note"}

// CleanOptions tunes the row cleaner.
type CleanOptions struct {
	RemoveKeywords []string // lower-case substrings matched against Description
}

// DefaultCleanOptions returns the standard cleaning settings.
func DefaultCleanOptions() CleanOptions {
	return CleanOptions{RemoveKeywords: DefaultRemoveKeywords}
}

// Clean turns the rows below the header into a table over the selected
// columns. Rows without a description and rows whose description contains a
// removal keyword are dropped; Description and Name are trimmed; Quantity and
// Rate are coerced to numbers. Heading rows are kept for BuildSections.
//
// The mapping must have been checked with ValidateMapping.
func Clean(g Grid, header int, selected []Column, mapping FieldMapping, opts CleanOptions) (Table, error) {
	if header < 0 || header >= len(g) {
		return Table{}, fmt.Errorf("header row %d outside sheet with %d rows", header+1, len(g))
	}
	if err := ValidateMapping(mapping, selected); err != nil {
		return Table{}, err
	}

	// Labels come from the header row itself.
	columns := make([]Column, len(selected))
	for i, c := range selected {
		columns[i] = Column{Index: c.Index, Label: strings.TrimSpace(g.Cell(header, c.Index))}
	}

	t := Table{Columns: columns, Mapping: mapping}
	descCol := mapping[FieldDescription]
	qtyCol := mapping[FieldQuantity]
	rateCol := mapping[FieldRate]
	nameCol, hasName := mapping.Column(FieldName)

	for i := header + 1; i < len(g); i++ {
		desc := strings.TrimSpace(g.Cell(i, descCol))
		if desc == "" {
			continue
		}
		if containsAny(strings.ToLower(desc), opts.RemoveKeywords) {
			continue
		}

		qty := ToNumber(g.Cell(i, qtyCol))
		rate := ToNumber(g.Cell(i, rateCol))

		values := make([]string, len(columns))
		for j, c := range columns {
			v := g.Cell(i, c.Index)
			switch {
			case c.Index == descCol:
				v = desc
			case c.Index == qtyCol:
				v = formatNumber(qty)
			case c.Index == rateCol:
				v = formatNumber(rate)
			case hasName && c.Index == nameCol:
				v = strings.TrimSpace(v)
			}
			values[j] = v
		}

		t.Rows = append(t.Rows, Row{
			Values:    values,
			Quantity:  qty,
			Rate:      rate,
			SourceRow: i,
		})
	}
	return t, nil
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
