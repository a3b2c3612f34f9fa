package httperr

import "errors"

// BusinessError is a rule violation identified by a stable machine
// code, e.g. "slot_taken" or "barber_unavailable". Codes cross layer
// boundaries unchanged; the handler layer owns their HTTP status and
// human-readable message.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err carries the given business code.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Code == code
}

// BusinessCode extracts the code from err, or "" when err is not a
// business error.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
