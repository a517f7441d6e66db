package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook is a loaded spreadsheet: its sheet names in workbook order and
// the raw grid of every sheet.
type Workbook struct {
	Path   string
	Sheets []string
	grids  map[string]Grid
}

// Grid returns the raw grid of the named sheet.
func (w *Workbook) Grid(sheet string) (Grid, bool) {
	g, ok := w.grids[sheet]
	return g, ok
}

// HasSheet reports whether the workbook contains the named sheet.
func (w *Workbook) HasSheet(sheet string) bool {
	_, ok := w.grids[sheet]
	return ok
}

// OpenWorkbook loads an .xlsx file, or a .csv file as a single sheet named
// after the file.
func OpenWorkbook(path string) (*Workbook, error) {
	lowerName := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lowerName, ".csv"):
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open csv: %w", err)
		}
		defer f.Close()
		g, err := parseCSV(f)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return &Workbook{Path: path, Sheets: []string{name}, grids: map[string]Grid{name: g}}, nil
	case strings.HasSuffix(lowerName, ".xlsx"), strings.HasSuffix(lowerName, ".xlsm"):
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open Excel file: %w", err)
		}
		defer f.Close()
		wb, err := readExcel(f)
		if err != nil {
			return nil, err
		}
		wb.Path = path
		return wb, nil
	}
	return nil, fmt.Errorf("unsupported file format %q: must be .csv or .xlsx", filepath.Ext(path))
}

// ReadWorkbook loads an xlsx workbook from r.
func ReadWorkbook(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()
	return readExcel(f)
}

// readExcel reads every sheet with raw cell values so numbers keep their
// stored precision instead of the display format.
func readExcel(f *excelize.File) (*Workbook, error) {
	wb := &Workbook{grids: make(map[string]Grid)}
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}
		wb.Sheets = append(wb.Sheets, sheet)
		wb.grids[sheet] = Grid(rows)
	}
	if len(wb.Sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return wb, nil
}

// parseCSV reads a CSV file into a raw grid. Rows may have differing
// lengths; no header is assumed.
func parseCSV(file io.Reader) (Grid, error) {
	reader := csv.NewReader(file)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return Grid(allRows), nil
}
