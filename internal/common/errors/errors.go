// internal/common/errors/errors.go
// Package errors defines the error taxonomy for voteview API calls.
package errors

import "fmt"

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeTransportFailed  ErrorCode = "TRANSPORT_FAILED"
	ErrCodeEmptyResult      ErrorCode = "EMPTY_RESULT"
	ErrCodeEmptyInput       ErrorCode = "EMPTY_INPUT"
)

// ValidationError reports a malformed or out-of-range search parameter.
// It is raised before any network call; the caller can always recover by
// correcting the input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("ValidationError: %s", e.Reason)
	}
	return fmt.Sprintf("ValidationError[%s]: %s", e.Field, e.Reason)
}

// NewValidationError creates a non-retryable parameter error.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// TransportError means the response body could not be decoded as JSON.
// Body carries the raw server response verbatim so the caller can diagnose
// a server-side error page against the query grammar.
type TransportError struct {
	Body string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("TransportError: undecodable response: %s", e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError wraps a decode failure together with the raw body.
func NewTransportError(body string, err error) *TransportError {
	return &TransportError{Body: body, Err: err}
}

// EmptyResultError means the query itself succeeded but the server declared
// a record count of zero. Distinct from TransportError.
type EmptyResultError struct {
	Query string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("EmptyResultError: no records matched query %q", e.Query)
}

// NewEmptyResultError creates an error for a zero-record response.
func NewEmptyResultError(query string) *EmptyResultError {
	return &EmptyResultError{Query: query}
}

// EmptyInputError means flattening was attempted on a zero-length record
// sequence, so no column schema could be inferred.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "EmptyInputError: cannot infer a schema from zero records"
}

// NewEmptyInputError creates an error for an empty record sequence.
func NewEmptyInputError() *EmptyInputError {
	return &EmptyInputError{}
}
