// Package errors provides error handling for argx.
//
// This package re-exports github.com/cockroachdb/errors so every layer gets
// stack traces, wrapping, and user-facing hints from one import:
//
//	if err := fw.Validate(); err != nil {
//	    return errors.Wrap(err, "failed to load framework")
//	}
//
//	return errors.WithHint(err, "pass --timeout to allow a longer search")
//
// The sentinels below classify the failures the solver can report. Wrap them
// to add context; errors.Is keeps working through the wrapping.
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint      = crdb.WithHint
	WithHintf     = crdb.WithHintf
	WithDetail    = crdb.WithDetail
	WithDetailf   = crdb.WithDetailf
	FlattenHints  = crdb.FlattenHints
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// GetStack returns the reportable stack trace attached to err, if any.
var GetStack = crdb.GetReportableStackTrace

// AssertionFailedf reports a broken internal invariant.
var AssertionFailedf = crdb.AssertionFailedf

// Sentinel errors reported by the solver and its collaborators.
var (
	// ErrUnknownSemantics indicates a semantics selector outside {stable, complete}
	ErrUnknownSemantics = New("unknown semantics")

	// ErrUnknownProblem indicates a problem code outside the supported set
	ErrUnknownProblem = New("unknown problem")

	// ErrInvalidFramework indicates malformed input: a dangling attack,
	// a duplicate argument or an empty label
	ErrInvalidFramework = New("invalid framework")

	// ErrTooLarge indicates a framework beyond the enumerable size
	ErrTooLarge = New("framework too large")

	// ErrUnknownArgument indicates a query about an argument the framework does not contain
	ErrUnknownArgument = New("unknown argument")

	// ErrMissingArgument indicates a decision problem without a queried argument
	ErrMissingArgument = New("missing argument")

	// ErrAborted indicates the search was cancelled or ran out of time
	ErrAborted = New("computation aborted")

	// ErrNotFound indicates the requested resource does not exist
	ErrNotFound = New("not found")
)

// IsAborted reports whether err is or wraps ErrAborted.
func IsAborted(err error) bool {
	return err != nil && Is(err, ErrAborted)
}

// IsInvalidInput reports whether err stems from bad user input rather than
// from the computation itself.
func IsInvalidInput(err error) bool {
	return err != nil && IsAny(err,
		ErrUnknownSemantics,
		ErrUnknownProblem,
		ErrInvalidFramework,
		ErrTooLarge,
		ErrUnknownArgument,
		ErrMissingArgument,
	)
}

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// Invalidf creates an ErrInvalidFramework error with a formatted message.
func Invalidf(format string, args ...interface{}) error {
	return Wrapf(ErrInvalidFramework, format, args...)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrapf(ErrNotFound, format, args...)
}
