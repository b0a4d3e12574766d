package notetool

import (
	"github.com/akeil/notetool/internal/errors"
)

// IsValidationError tells if an operation was rejected locally because a
// title or body was empty. No request was sent in that case.
func IsValidationError(err error) bool {
	return errors.IsValidationError(err)
}

// IsRequestFailure tells if an operation failed while talking to the
// backend, because of a transport error or an unsuccessful HTTP status.
func IsRequestFailure(err error) bool {
	return errors.IsRequestFailure(err)
}

// IsNotFound checks if the given error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.IsNotFound(err)
}
