package services

import "errors"

var (
	// ErrUOMUnmapped means no UOM column was mapped, so the end of the BOQ
	// cannot be located.
	ErrUOMUnmapped = errors.New("UOM column not mapped")
	// ErrNoUOMRows means the UOM column is empty on every row.
	ErrNoUOMRows = errors.New("no rows with a UOM value")
)

// TrimResult is the outcome of TrimTail. Warning is set, and Table is the
// untouched input, when the end of the BOQ could not be determined.
type TrimResult struct {
	Table    Table
	LastItem int // index into Table.Rows of the last row kept, -1 if none
	Dropped  int
	Warning  error
}

// TrimTail cuts the table after the last row that has a unit of measure,
// discarding trailing totals, signatures and padding.
func TrimTail(t Table) TrimResult {
	if !t.Mapping.Has(FieldUOM) {
		return TrimResult{Table: t, LastItem: len(t.Rows) - 1, Warning: ErrUOMUnmapped}
	}

	last := -1
	for i, r := range t.Rows {
		if v, _ := t.Value(r, FieldUOM); !isBlank(v) {
			last = i
		}
	}
	if last < 0 {
		return TrimResult{Table: t, LastItem: len(t.Rows) - 1, Warning: ErrNoUOMRows}
	}

	trimmed := t
	trimmed.Rows = append([]Row(nil), t.Rows[:last+1]...)
	return TrimResult{
		Table:    trimmed,
		LastItem: last,
		Dropped:  len(t.Rows) - (last + 1),
	}
}
