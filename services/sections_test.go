package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sectionTable cleans rows of {description, qty, rate} under a fixed header.
func sectionTable(t *testing.T, rows ...[]string) Table {
	t.Helper()
	g := Grid{{"Description", "Qty", "Rate"}}
	g = append(g, rows...)
	table, err := Clean(g, 0, HeaderColumns(g, 0), FieldMapping{FieldDescription: 0, FieldQuantity: 1, FieldRate: 2}, DefaultCleanOptions())
	require.NoError(t, err)
	return table
}

func descriptionsAndSections(t Table) ([]string, []string) {
	var descs, sections []string
	for _, r := range t.Rows {
		descs = append(descs, t.Description(r))
		sections = append(sections, r.Section)
	}
	return descs, sections
}

func TestClassifyHeading(t *testing.T) {
	tests := []struct {
		text string
		want HeadingKind
	}{
		{"A. Earthworks", HeadingParent},
		{"IV. Finishes", HeadingParent},
		{"XII. External works", HeadingParent},
		{"1.2 Excavation", HeadingChild},
		{"10.15 Rebar", HeadingChild},
		{"a) Foundations", HeadingChild},
		{"2. Substructure", HeadingAmbiguous},
		{"12. Roofing", HeadingAmbiguous},
		{"Total carried forward", HeadingNone},
		{"a. lower-case letter", HeadingNone},
		{"A) bracketed capital", HeadingNone},
		{"(a) Foundations", HeadingNone},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyHeading(tt.text))
		})
	}
}

func TestBuildSections_ParentHeading(t *testing.T) {
	table := sectionTable(t,
		[]string{"A. Earthworks", "0", "0"},
		[]string{"1.1 Excavation", "50", "20"},
		[]string{"1.2 Backfill", "30", "15"},
	)

	out := BuildSections(table)
	descs, sections := descriptionsAndSections(out)
	assert.Equal(t, []string{"1.1 Excavation", "1.2 Backfill"}, descs)
	assert.Equal(t, []string{"A. Earthworks", "A. Earthworks"}, sections)
	assert.True(t, out.HasSections)
	assert.Equal(t, []string{"Description", "Qty", "Rate", "Section"}, out.Labels())
}

func TestBuildSections_ParentAndChild(t *testing.T) {
	table := sectionTable(t,
		[]string{"A. Substructure", "0", "0"},
		[]string{"1.1 Excavation", "0", "0"},
		[]string{"Trench", "10", "5"},
		[]string{"1.2 Concrete", "0", "0"},
		[]string{"Blinding", "4", "100"},
		[]string{"B. Superstructure", "0", "0"},
		[]string{"Columns", "8", "250"},
	)

	_, sections := descriptionsAndSections(BuildSections(table))
	assert.Equal(t, []string{
		"A. Substructure : 1.1 Excavation",
		"A. Substructure : 1.2 Concrete",
		"B. Superstructure",
	}, sections, "a new parent resets the child")
}

func TestBuildSections_AmbiguousHeading(t *testing.T) {
	table := sectionTable(t,
		[]string{"1. General", "0", "0"},
		[]string{"Mobilisation", "1", "500"},
		[]string{"2. Preliminaries", "0", "0"},
		[]string{"Site office", "1", "900"},
	)

	_, sections := descriptionsAndSections(BuildSections(table))
	assert.Equal(t, []string{"1. General", "1. General : 2. Preliminaries"}, sections,
		"ambiguous heading is a parent only while no parent is set")
}

func TestBuildSections_AmbiguousAfterRomanParent(t *testing.T) {
	table := sectionTable(t,
		[]string{"II. Services", "0", "0"},
		[]string{"3. Plumbing", "0", "0"},
		[]string{"Pipes", "20", "4"},
		[]string{"III. Finishes", "0", "0"},
		[]string{"Paint", "100", "2"},
	)

	_, sections := descriptionsAndSections(BuildSections(table))
	assert.Equal(t, []string{"II. Services : 3. Plumbing", "III. Finishes"}, sections,
		"a child does not leak into the next parent")
}

func TestBuildSections_OrphanChildBeforeParent(t *testing.T) {
	table := sectionTable(t,
		[]string{"1.2 Excavation", "0", "0"},
		[]string{"Trench", "10", "5"},
		[]string{"A. Earthworks", "0", "0"},
		[]string{"Backfill", "3", "7"},
	)

	_, sections := descriptionsAndSections(BuildSections(table))
	assert.Equal(t, []string{" : 1.2 Excavation", "A. Earthworks"}, sections)
}

func TestBuildSections_ItemsBeforeAnyHeading(t *testing.T) {
	table := sectionTable(t,
		[]string{"Preliminaries", "1", "100"},
		[]string{"A. Earthworks", "0", "0"},
		[]string{"Excavation", "1", "5"},
	)

	_, sections := descriptionsAndSections(BuildSections(table))
	assert.Equal(t, []string{"", "A. Earthworks"}, sections)
}

func TestBuildSections_UnclassifiedHeadingsRemoved(t *testing.T) {
	table := sectionTable(t,
		[]string{"A. Earthworks", "0", "0"},
		[]string{"Excavation", "1", "5"},
		[]string{"Carried to collection", "0", "0"},
		[]string{"Backfill", "1", "5"},
	)

	descs, sections := descriptionsAndSections(BuildSections(table))
	assert.Equal(t, []string{"Excavation", "Backfill"}, descs)
	assert.Equal(t, []string{"A. Earthworks", "A. Earthworks"}, sections)
}

func TestBuildSections_RateOnlyOrQuantityOnlyIsAnItem(t *testing.T) {
	table := sectionTable(t,
		[]string{"A. Provisional sums", "0", "0"},
		[]string{"B. Allowance", "", "5000"},
		[]string{"C. Spare quantity", "3", ""},
	)

	descs, sections := descriptionsAndSections(BuildSections(table))
	assert.Equal(t, []string{"B. Allowance", "C. Spare quantity"}, descs)
	assert.Equal(t, []string{"A. Provisional sums", "A. Provisional sums"}, sections,
		"rows with a quantity or a rate never change the section")
}

func TestBuildSections_EmptyDescriptionHeadingDoesNotUpdateState(t *testing.T) {
	table := Table{
		Columns: []Column{{Index: 0, Label: "Description"}, {Index: 1, Label: "Qty"}, {Index: 2, Label: "Rate"}},
		Mapping: FieldMapping{FieldDescription: 0, FieldQuantity: 1, FieldRate: 2},
		Rows: []Row{
			{Values: []string{"A. Works", "0", "0"}},
			{Values: []string{"", "0", "0"}},
			{Values: []string{"Item", "1", "1"}, Quantity: 1, Rate: 1},
		},
	}

	out := BuildSections(table)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "A. Works", out.Rows[0].Section)
}

func TestSectionLabels_PrefixDeterministic(t *testing.T) {
	rows := [][]string{
		{"A. Earthworks", "0", "0"},
		{"Excavation", "1", "1"},
		{"a) Rock", "0", "0"},
		{"Breaking", "2", "3"},
		{"B. Concrete", "0", "0"},
		{"Slab", "4", "5"},
	}
	full := SectionLabels(sectionTable(t, rows...))
	for n := 1; n <= len(rows); n++ {
		prefix := SectionLabels(sectionTable(t, rows[:n]...))
		assert.Equal(t, full[:n], prefix, "labels of the first %d rows", n)
	}
}

func TestBuildSections_PreservesOrderAndInput(t *testing.T) {
	table := sectionTable(t,
		[]string{"A. Works", "0", "0"},
		[]string{"First", "1", "1"},
		[]string{"Second", "1", "1"},
		[]string{"Third", "1", "1"},
	)
	before := len(table.Rows)

	descs, _ := descriptionsAndSections(BuildSections(table))
	assert.Equal(t, []string{"First", "Second", "Third"}, descs)
	assert.Len(t, table.Rows, before)
	assert.Empty(t, table.Rows[1].Section, "input table is not modified")
}
