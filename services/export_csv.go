package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes the header labels followed by every row of data.
func WriteCSV(w io.Writer, data ExportData) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(data.Labels); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, r := range data.Rows {
		record := make([]string, len(r.Cells))
		for j, c := range r.Cells {
			record[j] = c.Text
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// GenerateCSV returns the CSV encoding of data.
func GenerateCSV(data ExportData) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
