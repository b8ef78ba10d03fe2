package services

import "errors"

var (
	// ErrNotFound is returned when an id does not resolve to a stored record.
	ErrNotFound = errors.New("record not found")
	// ErrCommentNotFound is returned when a tip exists but the addressed
	// embedded comment does not.
	ErrCommentNotFound = errors.New("comment not found")
)

// ValidationError wraps a schema failure so controllers can map it to a 400
// instead of collapsing it into the generic 500.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
