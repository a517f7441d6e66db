package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMapping(t *testing.T) {
	selected := []Column{
		{Index: 0, Label: "Item"},
		{Index: 2, Label: "Description"},
		{Index: 3, Label: "Qty"},
		{Index: 4, Label: "Rate"},
		{Index: 5, Label: "Unit"},
	}

	tests := []struct {
		name    string
		mapping FieldMapping
		wantErr error
	}{
		{"required only", FieldMapping{FieldDescription: 2, FieldQuantity: 3, FieldRate: 4}, nil},
		{"with optional fields", FieldMapping{FieldName: 0, FieldDescription: 2, FieldQuantity: 3, FieldRate: 4, FieldUOM: 5}, nil},
		{"column zero is valid", FieldMapping{FieldDescription: 0, FieldQuantity: 3, FieldRate: 4}, nil},
		{"missing description", FieldMapping{FieldQuantity: 3, FieldRate: 4}, ErrMissingRequiredField},
		{"missing quantity", FieldMapping{FieldDescription: 2, FieldRate: 4}, ErrMissingRequiredField},
		{"missing rate", FieldMapping{FieldDescription: 2, FieldQuantity: 3}, ErrMissingRequiredField},
		{"nil mapping", nil, ErrMissingRequiredField},
		{"unselected column", FieldMapping{FieldDescription: 2, FieldQuantity: 3, FieldRate: 4, FieldUOM: 1}, ErrColumnNotSelected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMapping(tt.mapping, selected)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateMapping_NamesMissingField(t *testing.T) {
	err := ValidateMapping(FieldMapping{FieldDescription: 0}, []Column{{Index: 0}})
	assert.ErrorContains(t, err, "Quantity")
	assert.ErrorContains(t, err, "Rate")
}

func TestMappingFields(t *testing.T) {
	assert.Equal(t, []Field{FieldDescription, FieldQuantity, FieldRate, FieldUOM}, MappingFields(false))
	assert.Equal(t, FieldName, MappingFields(true)[0])
	assert.True(t, FieldUOM.Optional())
	assert.True(t, FieldName.Optional())
	assert.False(t, FieldRate.Optional())
}
