package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldError is one (field path, message) sub-error of a failed form
// validation, in declaration order.
type FieldError struct {
	Field   string
	Message string
}

// Collect flattens a validation failure into its ordered field errors. A
// non-validation error becomes a single entry with an empty field path.
func Collect(err error) []FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	errs := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		errs = append(errs, FieldError{Field: e.Field(), Message: message(e)})
	}
	return errs
}

// ToFieldErrors maps field errors by path for display next to each input.
// When a path repeats, the later occurrence wins.
func ToFieldErrors(errs []FieldError) map[string]string {
	result := make(map[string]string, len(errs))
	for _, e := range errs {
		result[e.Field] = e.Message
	}
	return result
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "required_with":
		return "This field is required"
	case "email":
		return "Enter a valid e-mail address"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", e.Param())
	case "eqfield":
		return "Password confirmation does not match"
	}
	return fmt.Sprintf("Invalid value (%s)", e.Tag())
}
