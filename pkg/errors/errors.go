package errors

import "errors"

// Error kinds shared across features. Handlers translate these into HTTP
// status codes through the response package.
var (
	ErrNotFound    = errors.New("resource not found")
	ErrValidation  = errors.New("validation failed")
	ErrDuplicate   = errors.New("resource already exists")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("store unavailable")
)
