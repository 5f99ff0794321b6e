package validation

import (
	"errors"
	"fmt"

	"medisync/internal/api/dto/common"
	"medisync/internal/lead"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("leadfield", validateLeadField)
	v.RegisterValidation("plan", validatePlan)
}

// RegisterWithGin installs the custom validators on gin's binding engine
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	RegisterValidators(v)
	return nil
}

// validateLeadField checks that the value names a demo form field
func validateLeadField(fl validator.FieldLevel) bool {
	_, err := lead.ParseField(fl.Field().String())
	return err == nil
}

// validatePlan checks that the value is a catalog plan
func validatePlan(fl validator.FieldLevel) bool {
	return lead.IsPlan(fl.Field().String())
}

// FormatValidationError formats binding errors into a user-friendly list
func FormatValidationError(err error) []common.ValidationError {
	var out []common.ValidationError
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			out = append(out, common.ValidationError{
				Field:   e.Field(),
				Message: tagMessage(e),
				Value:   fmt.Sprint(e.Value()),
			})
		}
	}
	return out
}

func tagMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + e.Param() + " characters"
	case "leadfield":
		return "is not a form field"
	case "plan":
		return "is not a valid plan"
	default:
		return "failed " + e.Tag() + " validation"
	}
}

// FromErrorState lists the failing form fields with their messages
func FromErrorState(errs lead.ErrorState, values lead.FormState) []common.ValidationError {
	var out []common.ValidationError
	for _, f := range errs.Failing() {
		out = append(out, common.ValidationError{
			Field:   f.String(),
			Message: errs.Get(f),
			Value:   values.Get(f),
		})
	}
	return out
}
