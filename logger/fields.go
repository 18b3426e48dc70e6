package logger

import (
	"context"

	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across scm.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldCallID    = "call_id"
	FieldComponent = "component"
	FieldEngine    = "engine"

	// Input shape
	FieldGroups = "groups"
	FieldItems  = "items"
	FieldDims   = "dims"
	FieldRows   = "rows"

	// Options
	FieldTrunc   = "trunc"
	FieldPrior   = "prior"
	FieldVerbose = "verbose"
	FieldSparse  = "sparse"
	FieldThreads = "threads"
	FieldIgnored = "ignored_keys"

	// Results
	FieldClasses  = "classes"
	FieldClusters = "clusters"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError      = "error"
	FieldErrorClass = "error_class"

	// Files and paths
	FieldFile   = "file"
	FieldFormat = "format"
)

type contextKey string

const callIDKey contextKey = "logger_call_id"

// WithCallID adds a cluster call ID to the context for logging
func WithCallID(ctx context.Context, callID string) context.Context {
	return context.WithValue(ctx, callIDKey, callID)
}

// FieldsFromContext extracts logging fields from context.
// Returns key-value pairs suitable for use with Infow/Errorw/etc.
func FieldsFromContext(ctx context.Context) []interface{} {
	var fields []interface{}
	if callID, ok := ctx.Value(callIDKey).(string); ok && callID != "" {
		fields = append(fields, FieldCallID, callID)
	}
	return fields
}

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	a := &Adapter{logger: logger.ComponentLogger("scm.adapter")}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
