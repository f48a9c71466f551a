package serrors

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type ValidationErrors map[string]*Base

// ProcessValidatorErrors converts validator.ValidationErrors into per-field
// Base errors. labelFor maps a struct field name to a display label; an empty
// return falls back to the field name itself.
func ProcessValidatorErrors(errs validator.ValidationErrors, labelFor func(field string) string) ValidationErrors {
	out := make(ValidationErrors, len(errs))
	for _, fe := range errs {
		label := ""
		if labelFor != nil {
			label = labelFor(fe.Field())
		}
		if label == "" {
			label = fe.Field()
		}
		out[fe.Field()] = &Base{
			Code:    "VALIDATION_" + fe.Tag(),
			Message: messageFor(label, fe),
			Field:   fe.Field(),
		}
	}
	return out
}

// ToMessages flattens validation errors into the field -> message map
// consumed by form templates.
func (v ValidationErrors) ToMessages() map[string]string {
	out := make(map[string]string, len(v))
	for field, err := range v {
		out[field] = err.Message
	}
	return out
}

func messageFor(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
