package httperr

import (
	"errors"
	"strings"
)

// ValidationError reports client-fixable input problems before any
// transaction opens.
type ValidationError struct {
	Fields []string
}

func (e ValidationError) Error() string {
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

func ErrValidation(fields ...string) error {
	return ValidationError{Fields: fields}
}

func AsValidation(err error) (ValidationError, bool) {
	var ve ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
