package services

import "strings"

// Grid is the raw, untyped cell matrix of one worksheet. Rows may have
// different lengths; a missing cell is treated the same as an empty one.
type Grid [][]string

// Cell returns the value at (row, col), or "" when the position is outside
// the grid.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// isBlank reports whether a cell carries no value. Whitespace-only cells
// count as blank.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Column identifies one source column of the grid by its position and the
// label it carries on the header row.
type Column struct {
	Index int
	Label string
}

// HeaderColumns returns the non-empty cells of the header row as columns,
// in sheet order. These are the choices offered for column selection.
func HeaderColumns(g Grid, header int) []Column {
	if header < 0 || header >= len(g) {
		return nil
	}
	var cols []Column
	for i, v := range g[header] {
		if isBlank(v) {
			continue
		}
		cols = append(cols, Column{Index: i, Label: strings.TrimSpace(v)})
	}
	return cols
}

// nonEmptyCells returns the non-blank values of a grid row.
func nonEmptyCells(row []string) []string {
	out := make([]string, 0, len(row))
	for _, v := range row {
		if !isBlank(v) {
			out = append(out, v)
		}
	}
	return out
}
