package httperr

import "errors"

// BusinessError is a domain-level failure identified by a stable code
// ("duplicate_email", "invalid_credentials", "business_not_found", ...).
// Use cases return it; handlers map codes onto HTTP statuses.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from a BusinessError, or "" if err is
// something else.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
