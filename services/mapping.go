package services

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Field is one of the semantic BOQ fields a source column can be bound to.
type Field string

const (
	FieldName        Field = "Name"
	FieldDescription Field = "Description"
	FieldQuantity    Field = "Quantity"
	FieldRate        Field = "Rate"
	FieldUOM         Field = "UOM"
)

// MappingFields returns the fields in the order they are asked for.
// Name is only included when the sheet has a separate name column.
func MappingFields(withName bool) []Field {
	if withName {
		return []Field{FieldName, FieldDescription, FieldQuantity, FieldRate, FieldUOM}
	}
	return []Field{FieldDescription, FieldQuantity, FieldRate, FieldUOM}
}

// Optional reports whether a field may be left unmapped.
func (f Field) Optional() bool {
	return f == FieldName || f == FieldUOM
}

// FieldMapping binds semantic fields to grid column indices.
type FieldMapping map[Field]int

// Column returns the column index bound to f.
func (m FieldMapping) Column(f Field) (int, bool) {
	idx, ok := m[f]
	return idx, ok
}

// Has reports whether f is mapped.
func (m FieldMapping) Has(f Field) bool {
	_, ok := m[f]
	return ok
}

var (
	// ErrMissingRequiredField is returned when Description, Quantity or Rate
	// is not mapped.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrColumnNotSelected is returned when a field is bound to a column the
	// user did not select.
	ErrColumnNotSelected = errors.New("mapped column not selected")
)

// ValidateMapping checks that the required fields are mapped and that every
// mapped column is one of the selected columns.
func ValidateMapping(m FieldMapping, selected []Column) error {
	fields := map[Field]int(m)
	if fields == nil {
		// a nil map is treated as valid by the map rule
		fields = map[Field]int{}
	}
	err := validation.Validate(fields, validation.Map(
		validation.Key(FieldDescription),
		validation.Key(FieldQuantity),
		validation.Key(FieldRate),
	).AllowExtraKeys())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMissingRequiredField, err)
	}

	inSelection := validation.By(func(value interface{}) error {
		idx, _ := value.(int)
		for _, c := range selected {
			if c.Index == idx {
				return nil
			}
		}
		return fmt.Errorf("column %d is not among the selected columns", idx+1)
	})

	keys := make([]*validation.KeyRules, 0, len(m))
	for f := range m {
		keys = append(keys, validation.Key(f, inSelection))
	}
	if err := validation.Validate(fields, validation.Map(keys...)); err != nil {
		return fmt.Errorf("%w: %v", ErrColumnNotSelected, err)
	}
	return nil
}
