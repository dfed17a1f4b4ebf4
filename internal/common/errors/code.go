// internal/common/errors/code.go
package errors

import "errors"

// Code maps an error to its taxonomy code. Unknown errors map to the empty
// code so callers can fall through to generic handling.
func Code(err error) ErrorCode {
	switch {
	case IsValidation(err):
		return ErrCodeValidationFailed
	case IsTransport(err):
		return ErrCodeTransportFailed
	case IsEmptyResult(err):
		return ErrCodeEmptyResult
	case IsEmptyInput(err):
		return ErrCodeEmptyInput
	default:
		return ""
	}
}

// IsValidation reports whether err is a parameter validation failure.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsTransport reports whether err is an undecodable-response failure.
func IsTransport(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// IsEmptyResult reports whether err is a zero-record response.
func IsEmptyResult(err error) bool {
	var target *EmptyResultError
	return errors.As(err, &target)
}

// IsEmptyInput reports whether err is an empty flattening input.
func IsEmptyInput(err error) bool {
	var target *EmptyInputError
	return errors.As(err, &target)
}
