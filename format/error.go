package format

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// ErrorContext selects how a ParseError renders itself.
type ErrorContext int

const (
	ErrorContextTerminal ErrorContext = iota // colored, multi-line
	ErrorContextPlain                        // single line for logs and JSON
)

// ErrorKind categorizes parse errors for programmatic handling
type ErrorKind string

const (
	ErrorKindSyntax    ErrorKind = "syntax"    // Line does not match the grammar
	ErrorKindStructure ErrorKind = "structure" // Document decoded but has the wrong shape
	ErrorKindIO        ErrorKind = "io"        // Could not read the input
)

// ParseError describes why an input file could not be turned into a
// framework.
type ParseError struct {
	Err         error     // Underlying error
	Kind        ErrorKind // Error category
	Message     string    // Human-readable message
	File        string    // Source name (optional)
	Line        int       // 1-based line number, 0 when unknown
	Text        string    // Offending line (optional)
	Suggestions []string  // Possible fixes
}

// NewParseError creates a new ParseError with the given kind and message
func NewParseError(kind ErrorKind, message string) *ParseError {
	return &ParseError{Kind: kind, Message: message}
}

// Error implements error interface
func (e *ParseError) Error() string {
	return e.FormatError(ErrorContextPlain)
}

// FormatError generates context-appropriate error message
func (e *ParseError) FormatError(ctx ErrorContext) string {
	if ctx == ErrorContextPlain {
		return e.formatPlainError()
	}
	return e.formatTerminalError()
}

func (e *ParseError) location() string {
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d", e.File, e.Line)
	case e.File != "":
		return e.File
	case e.Line > 0:
		return fmt.Sprintf("line %d", e.Line)
	}
	return ""
}

func (e *ParseError) formatPlainError() string {
	msg := e.Message
	if loc := e.location(); loc != "" {
		msg = loc + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(". Suggestions: %s", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *ParseError) formatTerminalError() string {
	var b strings.Builder
	b.WriteString(pterm.Red(e.Message))
	if e.Err != nil {
		b.WriteString(pterm.Red(": " + e.Err.Error()))
	}

	b.WriteString("\n\n" + pterm.LightCyan("Context:"))
	if loc := e.location(); loc != "" {
		b.WriteString(fmt.Sprintf("\n  %s %s", pterm.Yellow("At:"), loc))
	}
	b.WriteString(fmt.Sprintf("\n  %s %s", pterm.Yellow("Kind:"), e.Kind))
	if e.Text != "" {
		b.WriteString(fmt.Sprintf("\n  %s '%s'", pterm.Yellow("Line:"), e.Text))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\n" + pterm.Green("Suggestions:"))
		for _, s := range e.Suggestions {
			b.WriteString("\n  • " + s)
		}
	}
	return b.String()
}

// Unwrap for errors.Is/As compatibility
func (e *ParseError) Unwrap() error {
	return e.Err
}

// WithLine records where the error occurred
func (e *ParseError) WithLine(n int, text string) *ParseError {
	e.Line = n
	e.Text = text
	return e
}

// WithFile records the source name
func (e *ParseError) WithFile(name string) *ParseError {
	e.File = name
	return e
}

// WithSuggestion adds a suggestion for fixing the error
func (e *ParseError) WithSuggestion(suggestion string) *ParseError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithUnderlying sets the underlying error
func (e *ParseError) WithUnderlying(err error) *ParseError {
	e.Err = err
	return e
}
