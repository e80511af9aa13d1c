package repl

import (
	"strings"

	"github.com/fatih/color"
)

// ErrorType represents different categories of errors for color coding
type ErrorType int

const (
	ErrorTypeSyntax ErrorType = iota
	ErrorTypeRuntime
	ErrorTypeUndefined
	ErrorTypeTypeError
	ErrorTypeGeneral
)

// ErrorFormatter handles colored error output for the REPL
type ErrorFormatter struct {
	syntaxColor    *color.Color
	runtimeColor   *color.Color
	undefinedColor *color.Color
	typeColor      *color.Color
	generalColor   *color.Color
	prefixColor    *color.Color
}

// NewErrorFormatter creates a new error formatter with predefined colors
func NewErrorFormatter() *ErrorFormatter {
	return &ErrorFormatter{
		syntaxColor:    color.New(color.FgRed, color.Bold),     // Bright red for syntax errors
		runtimeColor:   color.New(color.FgMagenta, color.Bold), // Magenta for runtime errors
		undefinedColor: color.New(color.FgYellow, color.Bold),  // Yellow for undefined identifiers
		typeColor:      color.New(color.FgCyan, color.Bold),    // Cyan for type errors
		generalColor:   color.New(color.FgWhite, color.Bold),   // White for general errors
		prefixColor:    color.New(color.FgRed, color.Bold),     // Red for "Error:" prefix
	}
}

// categorizeError determines the error type based on the error message. The
// substrings match this dialect's own error vocabulary (pkg/reader,
// pkg/frame, pkg/interp, pkg/value, pkg/builtins) — not a generic Lisp's.
func (ef *ErrorFormatter) categorizeError(errMsg string) ErrorType {
	errLower := strings.ToLower(errMsg)

	// Reader and form-shape errors (pkg/reader, pkg/value.ValidateForm/
	// ValidateFormals, pkg/interp's "malformed list"/"non-symbol")
	if strings.Contains(errLower, "unexpected") ||
		strings.Contains(errLower, "unterminated") ||
		strings.Contains(errLower, "bad number") ||
		strings.Contains(errLower, "end of input") ||
		strings.Contains(errLower, "empty input") ||
		strings.Contains(errLower, "malformed") ||
		strings.Contains(errLower, "non-symbol") {
		return ErrorTypeSyntax
	}

	// Unbound-identifier errors (pkg/frame.Lookup/Rebind)
	if strings.Contains(errLower, "unknown identifier") {
		return ErrorTypeUndefined
	}

	// Type errors (pkg/builtins' "not a pair"/"not a proper list"/..., and
	// pkg/interp's "is not a procedure")
	if strings.Contains(errLower, "not a pair") ||
		strings.Contains(errLower, "not a proper list") ||
		strings.Contains(errLower, "not a promise") ||
		strings.Contains(errLower, "not a procedure") ||
		strings.Contains(errLower, "not a symbol") ||
		strings.Contains(errLower, "not a string") ||
		strings.Contains(errLower, "expected number") {
		return ErrorTypeTypeError
	}

	// Runtime errors (arithmetic, arity, and stream-consistency failures)
	if strings.Contains(errLower, "division by zero") ||
		strings.Contains(errLower, "modulo by zero") ||
		strings.Contains(errLower, "incorrect number of arguments") ||
		strings.Contains(errLower, "too few arguments") ||
		strings.Contains(errLower, "too many arguments") ||
		strings.Contains(errLower, "arity mismatch") ||
		strings.Contains(errLower, "duplicate") ||
		strings.Contains(errLower, "should be a pair or") {
		return ErrorTypeRuntime
	}

	return ErrorTypeGeneral
}

// getColorForErrorType returns the appropriate color for an error type
func (ef *ErrorFormatter) getColorForErrorType(errorType ErrorType) *color.Color {
	switch errorType {
	case ErrorTypeSyntax:
		return ef.syntaxColor
	case ErrorTypeRuntime:
		return ef.runtimeColor
	case ErrorTypeUndefined:
		return ef.undefinedColor
	case ErrorTypeTypeError:
		return ef.typeColor
	default:
		return ef.generalColor
	}
}

// getErrorTypeLabel returns a human-readable label for the error type
func (ef *ErrorFormatter) getErrorTypeLabel(errorType ErrorType) string {
	switch errorType {
	case ErrorTypeSyntax:
		return "Syntax Error"
	case ErrorTypeRuntime:
		return "Runtime Error"
	case ErrorTypeUndefined:
		return "Undefined Identifier"
	case ErrorTypeTypeError:
		return "Type Error"
	default:
		return "Error"
	}
}

// FormatError formats an error with appropriate colors and categorization
func (ef *ErrorFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()
	errorType := ef.categorizeError(errMsg)
	errorColor := ef.getColorForErrorType(errorType)
	errorLabel := ef.getErrorTypeLabel(errorType)

	// Check if the error message already contains line information (the
	// reader's own "line %d, column %d: ..." errors)
	if strings.Contains(errMsg, "line ") && strings.Contains(errMsg, "column ") {
		// The line/column prefix is kept as part of the message
		prefix := ef.prefixColor.Sprintf("%s:", errorLabel)
		message := errorColor.Sprintf(" %s", errMsg)
		return prefix + message
	}

	// Standard error formatting
	prefix := ef.prefixColor.Sprintf("%s:", errorLabel)
	message := errorColor.Sprintf(" %s", errMsg)

	return prefix + message
}

// FormatErrorWithSuggestion formats an error with a suggestion
func (ef *ErrorFormatter) FormatErrorWithSuggestion(err error, suggestion string) string {
	if err == nil {
		return ""
	}

	baseError := ef.FormatError(err)
	if suggestion == "" {
		return baseError
	}

	suggestionColor := color.New(color.FgHiBlack, color.Italic)
	suggestionText := suggestionColor.Sprintf("\n  Suggestion: %s", suggestion)

	return baseError + suggestionText
}

// generateSuggestion provides helpful suggestions based on the error message
func (ef *ErrorFormatter) generateSuggestion(errMsg string) string {
	errLower := strings.ToLower(errMsg)

	if strings.Contains(errLower, "unknown identifier") {
		return "Check if the identifier is defined before this point"
	}

	if strings.Contains(errLower, "incorrect number of arguments") ||
		strings.Contains(errLower, "too few arguments") ||
		strings.Contains(errLower, "too many arguments") ||
		strings.Contains(errLower, "arity mismatch") {
		return "Check how many arguments the procedure expects"
	}

	if strings.Contains(errLower, "unexpected") || strings.Contains(errLower, "unterminated") {
		return "Check for balanced parentheses and proper syntax"
	}

	if strings.Contains(errLower, "division by zero") || strings.Contains(errLower, "modulo by zero") {
		return "Ensure the divisor is not zero"
	}

	if strings.Contains(errLower, "not a proper list") {
		return "Check that the argument is a proper list, not a dotted pair"
	}

	if strings.Contains(errLower, "not a procedure") {
		return "Make sure you're calling a procedure, not a non-procedure value"
	}

	if strings.Contains(errLower, "not a promise") {
		return "force only accepts a value produced by delay or cons-stream"
	}

	return ""
}

// FormatErrorWithSmartSuggestion formats an error with an automatically generated suggestion
func (ef *ErrorFormatter) FormatErrorWithSmartSuggestion(err error) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()
	suggestion := ef.generateSuggestion(errMsg)
	return ef.FormatErrorWithSuggestion(err, suggestion)
}
