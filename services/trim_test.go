package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uomTable(uoms ...string) Table {
	t := Table{
		Columns: []Column{{Index: 0, Label: "Description"}, {Index: 1, Label: "Unit"}},
		Mapping: FieldMapping{FieldDescription: 0, FieldUOM: 1},
	}
	for i, u := range uoms {
		t.Rows = append(t.Rows, Row{Values: []string{fmt.Sprintf("row %d", i+1), u}, SourceRow: i + 5})
	}
	return t
}

func TestTrimTail_DropsRowsAfterLastUOM(t *testing.T) {
	uoms := make([]string, 50)
	for i := 0; i < 42; i++ {
		if i%3 != 1 {
			uoms[i] = "m2"
		}
	}
	uoms[41] = "nos"

	res := TrimTail(uomTable(uoms...))
	require.NoError(t, res.Warning)
	assert.Len(t, res.Table.Rows, 42)
	assert.Equal(t, 41, res.LastItem)
	assert.Equal(t, 8, res.Dropped)
	assert.Equal(t, "row 42", res.Table.Rows[res.LastItem].Values[0])
}

func TestTrimTail_KeepsInteriorRowsWithoutUOM(t *testing.T) {
	res := TrimTail(uomTable("m3", "", "  ", "m3", "", ""))
	require.NoError(t, res.Warning)
	assert.Len(t, res.Table.Rows, 4)
	assert.Equal(t, 2, res.Dropped)
}

func TestTrimTail_WhitespaceUOMIsBlank(t *testing.T) {
	res := TrimTail(uomTable("m3", " \t"))
	require.NoError(t, res.Warning)
	assert.Len(t, res.Table.Rows, 1)
}

func TestTrimTail_LastRowHasUOM(t *testing.T) {
	res := TrimTail(uomTable("", "m3"))
	require.NoError(t, res.Warning)
	assert.Len(t, res.Table.Rows, 2)
	assert.Zero(t, res.Dropped)
}

func TestTrimTail_UOMUnmapped(t *testing.T) {
	table := uomTable("m3", "")
	delete(table.Mapping, FieldUOM)

	res := TrimTail(table)
	assert.ErrorIs(t, res.Warning, ErrUOMUnmapped)
	assert.Len(t, res.Table.Rows, 2, "table is returned unchanged")
	assert.Zero(t, res.Dropped)
}

func TestTrimTail_NoUOMRows(t *testing.T) {
	res := TrimTail(uomTable("", " ", ""))
	assert.ErrorIs(t, res.Warning, ErrNoUOMRows)
	assert.Len(t, res.Table.Rows, 3)
}

func TestTrimTail_EmptyTable(t *testing.T) {
	res := TrimTail(uomTable())
	assert.ErrorIs(t, res.Warning, ErrNoUOMRows)
	assert.Empty(t, res.Table.Rows)
	assert.Equal(t, -1, res.LastItem)
}

func TestTrimTail_DoesNotAliasInput(t *testing.T) {
	table := uomTable("m3", "")
	res := TrimTail(table)
	res.Table.Rows[0].Values[0] = "changed"
	res.Table.Rows = append(res.Table.Rows, Row{Values: []string{"extra", "m"}})
	assert.Len(t, table.Rows, 2)
	assert.Equal(t, "row 2", table.Rows[1].Values[0])
}
