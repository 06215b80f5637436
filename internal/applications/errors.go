package applications

import "errors"

var (
	ErrNotFound          = errors.New("application not found")
	ErrInvalidInput      = errors.New("invalid application")
	ErrAlreadyApplied    = errors.New("already applied for this job")
	ErrJobClosed         = errors.New("job listing is not accepting applications")
	ErrForbidden         = errors.New("application belongs to another parent's listing")
	ErrInvalidTransition = errors.New("only pending applications can be accepted or rejected")
)

// ValidationError lists the fields that failed validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid application"
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// ErrJobNotFound is returned when the target listing does not exist.
var ErrJobNotFound = errors.New("job listing not found")
