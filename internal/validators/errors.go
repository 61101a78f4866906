package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrInvalidInput    = errors.New("invalid input")
)

// FieldError describes the first rule a value failed.
// It matches [ErrInvalidInput] with errors.Is.
type FieldError struct {
	// Field is the JSON name of the offending field.
	Field string
	// Tag is the failed rule, e.g. "notblank", "email" or "min".
	Tag string
	// Param is the rule parameter, e.g. "6" for min=6.
	Param string
}

func (e *FieldError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("field %q failed on %q=%s", e.Field, e.Tag, e.Param)
	}
	return fmt.Sprintf("field %q failed on %q", e.Field, e.Tag)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}
