package services

import "bytes"

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

// sampleTable is a finished BOQ with two sections.
func sampleTable() Table {
	return Table{
		Columns: []Column{
			{Index: 1, Label: "Description"},
			{Index: 2, Label: "Unit"},
			{Index: 3, Label: "Qty"},
			{Index: 4, Label: "Rate"},
		},
		Mapping:     FieldMapping{FieldDescription: 1, FieldUOM: 2, FieldQuantity: 3, FieldRate: 4},
		HasSections: true,
		Rows: []Row{
			{Values: []string{"1.1 Excavation", "m3", "50", "20"}, Quantity: 50, Rate: 20, Section: "A. Earthworks"},
			{Values: []string{"Backfill", "m3", "30", "15"}, Quantity: 30, Rate: 15, Section: "A. Earthworks"},
			{Values: []string{"Blinding", "m3", "10", "120.5"}, Quantity: 10, Rate: 120.5, Section: "B. Concrete : a) Foundations"},
			{Values: []string{"=Grade slab", "m2", "200", "0"}, Quantity: 200, Section: "B. Concrete : a) Foundations"},
		},
	}
}

func sampleExportData() ExportData {
	return NewExportData(sampleTable(), "Villas BOQ", "villas.xlsx", "BOQ", "2025-01-15", CurrencyPlain)
}
