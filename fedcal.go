// Package fedcal is a federal calendar engine for the United States
// government. It answers, for any date or range of dates, whether the day is
// a federal business day, holiday, civilian or military payday, or probable
// military pass day; what federal fiscal year and quarter it falls in; and
// what appropriations/operational status each of the 17 tracked executive
// departments held on that day.
package fedcal

import "fmt"

// Version is the current version of the fedcal-go module.
const Version = "0.1.0"

// ErrorCode classifies the ways a fedcal operation can fail.
type ErrorCode int

const (
	// ErrParse indicates an input string did not match any accepted date format.
	ErrParse ErrorCode = iota

	// ErrOutOfRange indicates a parsed date lies outside 1970-01-01..2199-12-31.
	ErrOutOfRange

	// ErrShape indicates a date-tuple had the wrong arity, or an array
	// argument was empty where non-empty was required.
	ErrShape

	// ErrInvalidConfig indicates a PassdayMap failed validation, or an
	// offset was constructed with a contradictory weekmask.
	ErrInvalidConfig

	// ErrDatasetInvariant indicates the status dataset's per-department
	// coverage was not contiguous or overlapped on load.
	ErrDatasetInvariant
)

func (c ErrorCode) String() string {
	switch c {
	case ErrParse:
		return "ParseError"
	case ErrOutOfRange:
		return "OutOfRange"
	case ErrShape:
		return "ShapeError"
	case ErrInvalidConfig:
		return "InvalidConfig"
	case ErrDatasetInvariant:
		return "DatasetInvariantViolated"
	default:
		return "UnknownError"
	}
}

// Error is the structured error type returned by every fedcal operation.
// Queries never return a sentinel zero value on invalid input; they return
// an *Error instead.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same Code, allowing
// callers to write errors.Is(err, &Error{Code: ErrOutOfRange}).
func (e *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == te.Code
}

func newError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

func newErrorWithCause(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// NewInvalidConfigError builds an *Error with code ErrInvalidConfig, for use
// by offset/status constructors outside this package that reject a
// contradictory configuration (an empty weekmask, an invalid PassdayMap).
func NewInvalidConfigError(message string) *Error {
	return newError(ErrInvalidConfig, message)
}

// NewDatasetInvariantError builds an *Error with code ErrDatasetInvariant,
// for use by the status package when dataset load detects a coverage gap
// or overlap.
func NewDatasetInvariantError(message string) *Error {
	return newError(ErrDatasetInvariant, message)
}
