package serrors

import "fmt"

// Base is an error carrying a stable machine-readable code alongside a
// human-readable message. Field is set for validation errors.
type Base struct {
	Code    string
	Message string
	Field   string
}

func (e *Base) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Field, e.Message, e.Code)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

func NewError(code, message, field string) *Base {
	return &Base{Code: code, Message: message, Field: field}
}
