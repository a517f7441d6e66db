package services

import "testing"

func TestNewExportData(t *testing.T) {
	data := sampleExportData()

	wantLabels := []string{"Description", "Unit", "Qty", "Rate", "Section"}
	if len(data.Labels) != len(wantLabels) {
		t.Fatalf("labels = %v, want %v", data.Labels, wantLabels)
	}
	for i, l := range wantLabels {
		if data.Labels[i] != l {
			t.Errorf("label %d = %q, want %q", i, data.Labels[i], l)
		}
	}

	if len(data.Rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(data.Rows))
	}
	first := data.Rows[0]
	if len(first.Cells) != 5 {
		t.Fatalf("cells = %d, want 5", len(first.Cells))
	}
	if first.Cells[0].Numeric || first.Cells[1].Numeric {
		t.Error("description and unit should be text cells")
	}
	if !first.Cells[2].Numeric || first.Cells[2].Number != 50 {
		t.Errorf("qty cell = %+v, want numeric 50", first.Cells[2])
	}
	if !first.Cells[3].Numeric || first.Cells[3].Number != 20 {
		t.Errorf("rate cell = %+v, want numeric 20", first.Cells[3])
	}
	if first.Cells[4].Text != "A. Earthworks" || first.Section != "A. Earthworks" {
		t.Errorf("section = %q / %q", first.Cells[4].Text, first.Section)
	}

	if data.Summary.Items != 4 || data.Summary.Sections != 2 {
		t.Errorf("summary = %+v", data.Summary)
	}
}

func TestNewExportData_WithoutSections(t *testing.T) {
	table := sampleTable()
	table.HasSections = false

	data := NewExportData(table, "t", "f.csv", "", "2025-01-15", CurrencyINR)
	if len(data.Labels) != 4 {
		t.Errorf("labels = %v, want no section column", data.Labels)
	}
	if len(data.Rows[0].Cells) != 4 {
		t.Errorf("cells = %d, want 4", len(data.Rows[0].Cells))
	}
}
