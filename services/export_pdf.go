package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF creates a PDF document from cleaned BOQ data using maroto/v2.
// It returns the raw PDF bytes or an error.
func GeneratePDF(data ExportData) ([]byte, error) {
	widths := columnWidths(data)
	gridSize := 0
	for _, w := range widths {
		gridSize += w
	}
	if gridSize < 12 {
		gridSize = 12
	}

	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithMaxGridSize(gridSize).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, data, gridSize)
	addTableHeader(m, data.Labels, widths)

	prevSection := ""
	for _, r := range data.Rows {
		// A band row marks the start of every section.
		if r.Section != "" && r.Section != prevSection {
			addSectionBand(m, r.Section, gridSize)
		}
		prevSection = r.Section
		addTableRow(m, r, widths)
	}

	addSummary(m, data, gridSize)
	addFooter(m, data, gridSize)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// columnWidths gives text columns twice the width of numeric ones and the
// section column three times.
func columnWidths(data ExportData) []int {
	widths := make([]int, len(data.Labels))
	for i, label := range data.Labels {
		widths[i] = 2
		if len(data.Rows) > 0 && i < len(data.Rows[0].Cells) && data.Rows[0].Cells[i].Numeric {
			widths[i] = 1
		}
		if label == SectionLabel {
			widths[i] = 3
		}
	}
	return widths
}

// addHeader adds the title, source and date to the PDF.
func addHeader(m core.Maroto, data ExportData, gridSize int) {
	m.AddRows(
		row.New(12).Add(
			col.New(gridSize).Add(
				text.New(data.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	source := data.SourceFile
	if data.Sheet != "" {
		source += " / " + data.Sheet
	}
	half := gridSize / 2
	m.AddRows(
		row.New(8).Add(
			col.New(half).Add(
				text.New(fmt.Sprintf("Source: %s", source), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(gridSize-half).Add(
				text.New(fmt.Sprintf("Date: %s", data.CreatedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addTableHeader adds the column header row.
func addTableHeader(m core.Maroto, labels []string, widths []int) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerCell := props.Cell{BackgroundColor: headerBg}

	cols := make([]core.Col, len(labels))
	for i, label := range labels {
		cols[i] = col.New(widths[i]).Add(text.New(label, headerText)).WithStyle(&headerCell)
	}
	m.AddRows(row.New(8).Add(cols...))
}

// addSectionBand adds a shaded full-width row naming the section.
func addSectionBand(m core.Maroto, section string, gridSize int) {
	bg := &props.Color{Red: 235, Green: 235, Blue: 235}
	m.AddRows(
		row.New(7).Add(
			col.New(gridSize).Add(
				text.New(section, props.Text{
					Size:  8,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			).WithStyle(&props.Cell{BackgroundColor: bg}),
		),
	)
}

// addTableRow adds a single line item; numbers are right-aligned.
func addTableRow(m core.Maroto, r ExportRow, widths []int) {
	leftText := props.Text{Size: 7, Align: align.Left}
	rightText := props.Text{Size: 7, Align: align.Right}

	cols := make([]core.Col, len(widths))
	for i := range widths {
		var c ExportCell
		if i < len(r.Cells) {
			c = r.Cells[i]
		}
		if c.Numeric {
			cols[i] = col.New(widths[i]).Add(text.New(FormatQty(c.Number), rightText))
		} else {
			cols[i] = col.New(widths[i]).Add(text.New(c.Text, leftText))
		}
	}
	m.AddRows(row.New(7).Add(cols...))
}

// addSummary adds the item count, total amount and median rate.
func addSummary(m core.Maroto, data ExportData, gridSize int) {
	m.AddRows(row.New(6))

	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	total, _ := data.Summary.TotalAmount.Float64()
	lines := []struct{ label, value string }{
		{"Items", fmt.Sprintf("%d", data.Summary.Items)},
		{"Total Amount", FormatAmount(total, data.Currency)},
		{"Median Rate", FormatAmount(data.Summary.MedianRate, data.Currency)},
	}

	labelWidth := gridSize * 2 / 3
	for _, l := range lines {
		m.AddRows(
			row.New(8).Add(
				col.New(labelWidth).Add(text.New(l.label, labelStyle)).WithStyle(summaryCell),
				col.New(gridSize-labelWidth).Add(text.New(l.value, valueStyle)).WithStyle(summaryCell),
			),
		)
	}
}

// addFooter adds the generated-date line at the bottom.
func addFooter(m core.Maroto, data ExportData, gridSize int) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(gridSize).Add(
				text.New(
					fmt.Sprintf("Generated on %s", data.CreatedDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
