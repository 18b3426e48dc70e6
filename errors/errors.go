// Package errors provides error handling for scm.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints for errors the caller can fix
//   - Reference marks that keep a message verbatim while tagging its class
//
// Every failure that crosses the adapter boundary belongs to exactly one of
// three classes: input shape, configuration, or engine. Use the constructors
// below so callers can test the class with errors.Is.
//
// Usage:
//
//	// Reject malformed input
//	return errors.NewInputShapef("X{%d} is not a cell array", j+1)
//
//	// Keep an engine message verbatim but classify it
//	return errors.MarkEngine(err)
//
//	// Check the class
//	if errors.IsConfigurationError(err) {
//	    // report, do not retry
//	}
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
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Call-level error classes. Every error returned from a cluster call is
// marked with one of these.
var (
	// ErrInputShape indicates X is absent or malformed
	ErrInputShape = New("input shape error")

	// ErrConfiguration indicates a recognized option has a bad value
	ErrConfiguration = New("configuration error")

	// ErrEngine indicates the clustering engine failed during computation
	ErrEngine = New("engine error")
)

// NewInputShapef creates an input-shape error with a formatted message.
func NewInputShapef(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrInputShape)
}

// NewConfigurationf creates a configuration error with a formatted message.
func NewConfigurationf(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrConfiguration)
}

// MarkInputShape classifies err as an input-shape error.
func MarkInputShape(err error) error {
	if err == nil {
		return nil
	}
	return Mark(err, ErrInputShape)
}

// MarkConfiguration classifies err as a configuration error.
func MarkConfiguration(err error) error {
	if err == nil {
		return nil
	}
	return Mark(err, ErrConfiguration)
}

// MarkEngine classifies err as an engine error without changing its message.
func MarkEngine(err error) error {
	if err == nil {
		return nil
	}
	return Mark(err, ErrEngine)
}

// IsInputShapeError checks if an error is or wraps ErrInputShape
func IsInputShapeError(err error) bool {
	return err != nil && Is(err, ErrInputShape)
}

// IsConfigurationError checks if an error is or wraps ErrConfiguration
func IsConfigurationError(err error) bool {
	return err != nil && Is(err, ErrConfiguration)
}

// IsEngineError checks if an error is or wraps ErrEngine
func IsEngineError(err error) bool {
	return err != nil && Is(err, ErrEngine)
}

// Class returns a short name for the error's class, or "unknown".
func Class(err error) string {
	switch {
	case IsInputShapeError(err):
		return "input"
	case IsConfigurationError(err):
		return "configuration"
	case IsEngineError(err):
		return "engine"
	default:
		return "unknown"
	}
}
