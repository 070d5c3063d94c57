package logger

import (
	"go.uber.org/zap"

	"github.com/teranos/argx/sym"
)

// Symbol-aware logging helpers.
// These functions log with the glyph as a structured field, not in the message.
//
//	// Instead of:
//	logger.Infow(sym.Solve + " solved", "problem", p)
//
//	// Use:
//	logger.SolveInfow("solved", "problem", p)

// SolveInfow logs an info message with the Solve glyph (⊨)
func SolveInfow(msg string, keysAndValues ...interface{}) {
	SymbolInfow(sym.Solve, msg, keysAndValues...)
}

// SolveWarnw logs a warning with the Solve glyph (⊨)
func SolveWarnw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, sym.Solve}, keysAndValues...)
		Logger.Warnw(msg, fields...)
	}
}

// WatchInfow logs an info message with the Watch glyph (◉)
func WatchInfow(msg string, keysAndValues ...interface{}) {
	SymbolInfow(sym.Watch, msg, keysAndValues...)
}

// DBDebugw logs a debug message with the DB symbol (⊔)
func DBDebugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, sym.DB}, keysAndValues...)
		Logger.Debugw(msg, fields...)
	}
}

// SymbolInfow logs with any glyph
func SymbolInfow(symbol, msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, symbol}, keysAndValues...)
		Logger.Infow(msg, fields...)
	}
}

// Instance logger wrappers, for components holding their own logger:
//
//	s.log = logger.AddSearchSymbol(base)

// AddSearchSymbol wraps a logger with the Search symbol (꩜)
func AddSearchSymbol(l *zap.SugaredLogger) *zap.SugaredLogger {
	return l.With(FieldSymbol, sym.Search)
}

// AddDBSymbol wraps a logger with the DB symbol (⊔)
func AddDBSymbol(l *zap.SugaredLogger) *zap.SugaredLogger {
	return l.With(FieldSymbol, sym.DB)
}

// AddWatchSymbol wraps a logger with the Watch glyph (◉)
func AddWatchSymbol(l *zap.SugaredLogger) *zap.SugaredLogger {
	return l.With(FieldSymbol, sym.Watch)
}
