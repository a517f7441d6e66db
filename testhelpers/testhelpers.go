// Package testhelpers provides fixtures for testing the BOQ cleaner: sample
// grids, temporary workbooks and scripted prompt input.
package testhelpers

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"boqclean/services"
)

// Sheet is a named grid used to build test workbooks.
type Sheet struct {
	Name string
	Rows [][]any
}

// CreateTestWorkbook writes an xlsx file with the given sheets to a
// temporary directory and returns its path. The directory is cleaned up
// automatically when the test finishes.
func CreateTestWorkbook(t *testing.T, fileName string, sheets ...Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.Name); err != nil {
				t.Fatalf("failed to rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			t.Fatalf("failed to add sheet %q: %v", s.Name, err)
		}
		for r, row := range s.Rows {
			for c, v := range row {
				if v == nil {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					t.Fatalf("bad cell (%d,%d): %v", r, c, err)
				}
				if err := f.SetCellValue(s.Name, cell, v); err != nil {
					t.Fatalf("failed to set %s!%s: %v", s.Name, cell, err)
				}
			}
		}
	}

	path := filepath.Join(t.TempDir(), fileName)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save test workbook: %v", err)
	}
	return path
}

// CreateTestCSV writes content to a temporary .csv file and returns its path.
func CreateTestCSV(t *testing.T, fileName, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), fileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test csv: %v", err)
	}
	return path
}

// Answers joins prompt answers into line-separated input.
func Answers(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// SampleBOQRows is a small BOQ with a title block, a header on row 4,
// parent and child headings, a sub total, a note and a signature tail.
func SampleBOQRows() [][]any {
	return [][]any{
		{"GreenCurve Villas"},
		{"Bill of Quantities"},
		{nil},
		{"Item", "Description", "Unit", "Qty", "Rate", "Amount"},
		{nil, "A. Earthworks", nil, nil, nil, nil},
		{"1", "1.1 Excavation", "m3", 50, 20, 1000},
		{"2", "  Backfill  ", "m3", 30, 15, 450},
		{nil, "Sub Total for Section A", nil, nil, nil, 1450},
		{nil, "B. Concrete", nil, nil, nil, nil},
		{nil, "a) Foundations", nil, nil, nil, nil},
		{"3", "Blinding", "m3", 10, 120.5, 1205},
		{nil, "Note: rates include VAT", nil, nil, nil, nil},
		{"4", "Grade slab", "m2", 200, "TBC", 0},
		{nil, "Total carried to summary", nil, nil, nil, 2655},
		{nil, "Signed for the contractor", nil, 1, nil, nil},
	}
}

// SampleGrid returns SampleBOQRows as a raw grid of strings, the form the
// workbook reader produces.
func SampleGrid() services.Grid {
	rows := SampleBOQRows()
	g := make(services.Grid, len(rows))
	for i, row := range rows {
		g[i] = make([]string, len(row))
		for j, v := range row {
			g[i][j] = cellText(v)
		}
	}
	return g
}

func cellText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return ""
}
