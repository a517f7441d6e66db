package services

// ExportCell is one output value. Numeric cells keep their number so
// spreadsheet writers can store them as numbers.
type ExportCell struct {
	Text    string
	Number  float64
	Numeric bool
}

// ExportRow represents a single line item of the cleaned BOQ.
type ExportRow struct {
	Section string
	Cells   []ExportCell
}

// ExportData holds all data needed for export.
type ExportData struct {
	Title       string
	SourceFile  string
	Sheet       string
	CreatedDate string
	Currency    Currency
	Labels      []string
	Rows        []ExportRow
	Summary     Summary
}

// NewExportData prepares t for the file writers. Quantity and Rate become
// numeric cells; the section, when built, is the last column.
func NewExportData(t Table, title, sourceFile, sheet, createdDate string, currency Currency) ExportData {
	qtyCol, _ := t.Mapping.Column(FieldQuantity)
	rateCol, _ := t.Mapping.Column(FieldRate)

	data := ExportData{
		Title:       title,
		SourceFile:  sourceFile,
		Sheet:       sheet,
		CreatedDate: createdDate,
		Currency:    currency,
		Labels:      t.Labels(),
		Rows:        make([]ExportRow, 0, len(t.Rows)),
		Summary:     Summarize(t),
	}

	for _, r := range t.Rows {
		cells := make([]ExportCell, 0, len(data.Labels))
		for i, c := range t.Columns {
			cell := ExportCell{}
			if i < len(r.Values) {
				cell.Text = r.Values[i]
			}
			switch c.Index {
			case qtyCol:
				cell.Number, cell.Numeric = r.Quantity, true
			case rateCol:
				cell.Number, cell.Numeric = r.Rate, true
			}
			cells = append(cells, cell)
		}
		if t.HasSections {
			cells = append(cells, ExportCell{Text: r.Section})
		}
		data.Rows = append(data.Rows, ExportRow{Section: r.Section, Cells: cells})
	}
	return data
}
