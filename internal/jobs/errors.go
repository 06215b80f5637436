package jobs

import "errors"

var (
	ErrNotFound     = errors.New("job listing not found")
	ErrForbidden    = errors.New("job listing belongs to another parent")
	ErrInvalidInput = errors.New("invalid job listing")
)

// ValidationError lists the fields that failed validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid job listing"
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
