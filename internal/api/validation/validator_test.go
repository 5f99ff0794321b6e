package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medisync/internal/api/dto/common"
	"medisync/internal/lead"
)

type fieldProbe struct {
	Field string `validate:"required,leadfield"`
	Plan  string `validate:"omitempty,plan"`
}

func TestCustomValidators(t *testing.T) {
	v := validator.New()
	RegisterValidators(v)

	tests := []struct {
		name  string
		probe fieldProbe
		valid bool
	}{
		{"known field", fieldProbe{Field: "phone"}, true},
		{"known field with plan", fieldProbe{Field: "service", Plan: "Enterprise"}, true},
		{"unknown field", fieldProbe{Field: "fax"}, false},
		{"missing field", fieldProbe{}, false},
		{"unknown plan", fieldProbe{Field: "service", Plan: "Premium"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.probe)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	v := validator.New()
	RegisterValidators(v)

	err := v.Struct(fieldProbe{Field: "fax", Plan: "Premium"})
	require.Error(t, err)

	got := FormatValidationError(err)
	assert.Equal(t, []common.ValidationError{
		{Field: "Field", Message: "is not a form field", Value: "fax"},
		{Field: "Plan", Message: "is not a valid plan", Value: "Premium"},
	}, got)

	assert.Empty(t, FormatValidationError(assert.AnError))
}

func TestFromErrorState(t *testing.T) {
	values := lead.FormState{Name: "", Email: "a@b.com", Phone: "555-123-4567"}
	errs := lead.ValidateForm(values)

	got := FromErrorState(errs, values)
	assert.Equal(t, []common.ValidationError{
		{Field: "name", Message: lead.MsgNameRequired},
		{Field: "phone", Message: lead.MsgPhoneInvalid, Value: "555-123-4567"},
		{Field: "service", Message: lead.MsgPlanRequired},
	}, got)
}

func TestRegisterWithGin(t *testing.T) {
	assert.NoError(t, RegisterWithGin())
}
