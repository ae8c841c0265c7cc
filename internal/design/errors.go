package design

import "fmt"

// ErrorKind classifies check failures that abort a compliance run.
type ErrorKind string

const (
	// KindValidation marks missing or non-numeric required fields.
	KindValidation ErrorKind = "validation"
	// KindUnsupportedMember marks an unknown dispatch key.
	KindUnsupportedMember ErrorKind = "unsupported_member_type"
	// KindComputation marks degenerate geometry, e.g. a zero section
	// area that would divide by zero.
	KindComputation ErrorKind = "computation"
)

// Error is the single error type surfaced by the core. Checkers never
// let it escape to the caller; it is converted into an error-only
// Result tagged with the member type.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Validationf builds a validation error.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// Computationf builds a computation error.
func Computationf(format string, args ...any) *Error {
	return &Error{Kind: KindComputation, Msg: fmt.Sprintf(format, args...)}
}

// Unsupportedf builds an unsupported-member-type error.
func Unsupportedf(format string, args ...any) *Error {
	return &Error{Kind: KindUnsupportedMember, Msg: fmt.Sprintf(format, args...)}
}
