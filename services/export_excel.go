package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// GenerateExcel creates an Excel file from the given ExportData and returns
// the file contents as a byte slice.
func GenerateExcel(data ExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Determine sheet name (max 31 chars, no reserved characters).
	sheetName := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, data.Title)
	if r := []rune(sheetName); len(r) > 31 {
		sheetName = string(r[:31])
	}
	if sheetName == "" {
		sheetName = "BOQ"
	}

	// Rename default sheet.
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	ncols := len(data.Labels)
	if ncols < 2 {
		ncols = 2
	}
	columns := make([]string, ncols)
	for i := range columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("column name %d: %w", i+1, err)
		}
		columns[i] = name
	}
	lastCol := columns[len(columns)-1]

	// Wide columns for text, narrow for numbers.
	for i, label := range data.Labels {
		width := 14.0
		if len(data.Rows) > 0 && i < len(data.Rows[0].Cells) && data.Rows[0].Cells[i].Numeric {
			width = 10
		}
		if label == SectionLabel {
			width = 30
		}
		if err := f.SetColWidth(sheetName, columns[i], columns[i], width); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", columns[i], err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	// Column header style: bold, white text, charcoal background, centered.
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}

	// First item of each section is bold so section breaks stand out.
	sectionStartStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create section style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	// ── Header Rows (1-3) ───────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(data.Title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if data.SourceFile != "" {
		if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
			return nil, fmt.Errorf("merge source: %w", err)
		}
		source := "Source: " + data.SourceFile
		if data.Sheet != "" {
			source += " / " + data.Sheet
		}
		f.SetCellValue(sheetName, "A2", sanitizeExcelCell(source))
		f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)
	}

	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheetName, "A3", "Date: "+data.CreatedDate)
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	// ── Row 5: Column Headers ───────────────────────────────────────────

	for i, h := range data.Labels {
		f.SetCellValue(sheetName, fmt.Sprintf("%s5", columns[i]), sanitizeExcelCell(h))
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	// ── Data Rows (starting row 6) ──────────────────────────────────────

	row := 6
	prevSection := ""
	for _, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", row)
		for j, c := range r.Cells {
			cell := columns[j] + rowStr
			if c.Numeric {
				f.SetCellValue(sheetName, cell, c.Number)
			} else {
				f.SetCellValue(sheetName, cell, sanitizeExcelCell(c.Text))
			}
		}

		style := itemStyle
		if r.Section != "" && r.Section != prevSection {
			style = sectionStartStyle
		}
		prevSection = r.Section
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, style)

		row++
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	row++
	total, _ := data.Summary.TotalAmount.Float64()
	summary := []struct {
		label string
		value any
	}{
		{"Items:", data.Summary.Items},
		{"Total Amount:", FormatAmount(total, data.Currency)},
		{"Median Rate:", FormatAmount(data.Summary.MedianRate, data.Currency)},
	}
	for _, s := range summary {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, s.label)
		f.SetCellStyle(sheetName, "A"+rowStr, "A"+rowStr, summaryLabelStyle)
		f.SetCellValue(sheetName, "B"+rowStr, s.value)
		row++
	}

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
