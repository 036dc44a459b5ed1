// Package errors re-exports the stdlib errors API together with the
// pkg/errors wrapping helpers, so callers import a single errors package
// and wrapped failures keep their stack traces.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a plain error with the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether target appears anywhere in err's chain.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As assigns the first error in err's chain matching target's type.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Unwrap returns err's immediate cause, or nil.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Join combines multiple errors into one.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Errorf formats a new error and records the call site's stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Wrap annotates err with a message and the call site's stack trace.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the call site's stack trace without changing the message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// WithMessage annotates err without recording a stack trace.
func WithMessage(err error, message string) error {
	return pkgerrors.WithMessage(err, message)
}

// Cause walks to the innermost error in a pkg/errors chain.
//
//nolint:wrapcheck // Passthrough keeps pkg/errors semantics intact.
func Cause(err error) error {
	return pkgerrors.Cause(err)
}
