package logger

import (
	"context"

	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across argx.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldRunID = "run_id"
	FieldFile  = "file"
	FieldLine  = "line"

	// Components
	FieldComponent = "component"
	FieldCommand   = "command"

	// Problem description
	FieldProblem   = "problem"
	FieldSemantics = "semantics"
	FieldArgument  = "argument"
	FieldArguments = "arguments"
	FieldAttacks   = "attacks"
	FieldFormat    = "format"

	// Search
	FieldWorkers    = "workers"
	FieldRange      = "range"
	FieldScanned    = "scanned"
	FieldTotalCount = "total_count"
	FieldExtensions = "extensions"
	FieldAnswer     = "answer"

	// Timing
	FieldDurationMS = "duration_ms"
	FieldTimeout    = "timeout"

	// Errors
	FieldError = "error"

	// Storage and output
	FieldDatabase = "database"
	FieldPath     = "path"
	FieldCount    = "count"
	FieldStatus   = "status"

	// Graph stats
	FieldNodes = "nodes"
	FieldLinks = "links"

	FieldSymbol = "symbol" // command glyph (⊨, ⋈, ◉, ...)
)

// Context keys for propagating logging context
type contextKey string

const (
	runIDKey     contextKey = "logger_run_id"
	fileKey      contextKey = "logger_file"
	componentKey contextKey = "logger_component"
)

// WithRunID adds a run ID to the context for logging
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// WithFile adds the framework file being processed to the context
func WithFile(ctx context.Context, file string) context.Context {
	return context.WithValue(ctx, fileKey, file)
}

// WithComponent adds a component name to the context for logging
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, componentKey, component)
}

// FieldsFromContext extracts logging fields from context.
// Returns key-value pairs suitable for use with Infow/Errorw/etc.
func FieldsFromContext(ctx context.Context) []interface{} {
	var fields []interface{}

	if runID, ok := ctx.Value(runIDKey).(string); ok && runID != "" {
		fields = append(fields, FieldRunID, runID)
	}
	if file, ok := ctx.Value(fileKey).(string); ok && file != "" {
		fields = append(fields, FieldFile, file)
	}
	if component, ok := ctx.Value(componentKey).(string); ok && component != "" {
		fields = append(fields, FieldComponent, component)
	}

	return fields
}

// LoggerFromContext returns the global logger with fields extracted from ctx.
func LoggerFromContext(ctx context.Context) *zap.SugaredLogger {
	fields := FieldsFromContext(ctx)
	if len(fields) == 0 {
		return Logger
	}
	return Logger.With(fields...)
}

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
//	solver := semantics.NewSolver(cfg, logger.ComponentLogger("solver"))
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
//	runLog := logger.ChildLogger(base, logger.FieldRunID, run.ID)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
