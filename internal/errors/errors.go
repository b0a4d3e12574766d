package errors

import (
	e "errors"
	"fmt"
	"net/http"
)

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
func Wrap(err error, msg string, v ...interface{}) error {
	msg = fmt.Sprintf(msg, v...)
	return fmt.Errorf("%v: %w", msg, err)
}

type notFound struct {
	message string
}

// NewNotFound creates a new "not found" error.
func NewNotFound(s string, v ...interface{}) error {
	return asNotFound(fmt.Errorf(s, v...))
}

func (n notFound) Error() string {
	return n.message
}

func asNotFound(err error) error {
	return notFound{fmt.Sprintf("Not found: %v", err)}
}

// IsNotFound checks if the given error is a "not found" error.
func IsNotFound(err error) bool {
	var nf notFound
	return e.As(err, &nf)
}

type validationError struct {
	message string
}

func (v validationError) Error() string {
	return v.message
}

// NewValidationError creates an error of from the given format string.
func NewValidationError(msg string, v ...interface{}) error {
	return validationError{fmt.Sprintf(msg, v...)}
}

// IsValidationError checks if the given error was caused by invalid input.
func IsValidationError(err error) bool {
	var ve validationError
	return e.As(err, &ve)
}

// requestFailure is any non-successful outcome of a call to the remote
// service, no matter if the request never made it or came back with a bad
// status.
type requestFailure struct {
	message string
	status  int
	cause   error
}

func (r requestFailure) Error() string {
	if r.cause == nil {
		return r.message
	}
	return fmt.Sprintf("%v: %v", r.message, r.cause)
}

func (r requestFailure) Unwrap() error {
	return r.cause
}

// NewRequestFailure creates a request failure from a transport level error.
func NewRequestFailure(cause error, msg string, v ...interface{}) error {
	return requestFailure{
		message: fmt.Sprintf(msg, v...),
		cause:   cause,
	}
}

// IsRequestFailure checks if the given error is a failed remote call.
func IsRequestFailure(err error) bool {
	var rf requestFailure
	return e.As(err, &rf)
}

// StatusOf returns the HTTP status code attached to a request failure.
// Returns 0 if the request did not produce a response.
func StatusOf(err error) int {
	var rf requestFailure
	if e.As(err, &rf) {
		return rf.status
	}
	return 0
}

// ExpectSuccess checks if the given http response has any 2xx status.
func ExpectSuccess(res *http.Response, msg string) error {
	code := res.StatusCode
	if code >= 200 && code < 300 {
		return nil
	}

	return statusFailure(code, msg)
}

func statusFailure(code int, msg string) error {
	if msg != "" {
		msg = msg + ": "
	}

	return requestFailure{
		message: fmt.Sprintf("%vgot HTTP status code %v", msg, code),
		status:  code,
	}
}
