package repl

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorFormatter_categorizeError(t *testing.T) {
	ef := NewErrorFormatter()

	tests := []struct {
		name         string
		errorMsg     string
		expectedType ErrorType
	}{
		// Syntax / form-shape errors
		{
			name:         "unexpected close paren",
			errorMsg:     "line 1, column 5: unexpected )",
			expectedType: ErrorTypeSyntax,
		},
		{
			name:         "unterminated string",
			errorMsg:     "unterminated string",
			expectedType: ErrorTypeSyntax,
		},
		{
			name:         "unterminated list",
			errorMsg:     "unexpected end of input, unterminated list",
			expectedType: ErrorTypeSyntax,
		},
		{
			name:         "bad number",
			errorMsg:     "line 2, column 3: bad number \"1.2.3\"",
			expectedType: ErrorTypeSyntax,
		},
		{
			name:         "malformed special form",
			errorMsg:     "malformed special form: bad bindings list in let form",
			expectedType: ErrorTypeSyntax,
		},
		{
			name:         "non-symbol formal",
			errorMsg:     "non-symbol: 42",
			expectedType: ErrorTypeSyntax,
		},

		// Unbound identifier errors
		{
			name:         "unknown identifier",
			errorMsg:     "unknown identifier: foo",
			expectedType: ErrorTypeUndefined,
		},

		// Type errors
		{
			name:         "not a pair",
			errorMsg:     "car: not a pair: 5",
			expectedType: ErrorTypeTypeError,
		},
		{
			name:         "not a proper list",
			errorMsg:     "length: not a proper list: (1 . 2)",
			expectedType: ErrorTypeTypeError,
		},
		{
			name:         "not a procedure",
			errorMsg:     "5 is not a procedure",
			expectedType: ErrorTypeTypeError,
		},
		{
			name:         "not a promise",
			errorMsg:     "force: not a promise: 5",
			expectedType: ErrorTypeTypeError,
		},
		{
			name:         "expected number",
			errorMsg:     "expected number, got: \"x\"",
			expectedType: ErrorTypeTypeError,
		},

		// Runtime errors
		{
			name:         "division by zero",
			errorMsg:     "division by zero",
			expectedType: ErrorTypeRuntime,
		},
		{
			name:         "modulo by zero",
			errorMsg:     "modulo by zero",
			expectedType: ErrorTypeRuntime,
		},
		{
			name:         "incorrect number of arguments",
			errorMsg:     "incorrect number of arguments: +",
			expectedType: ErrorTypeRuntime,
		},
		{
			name:         "too few arguments",
			errorMsg:     "too few arguments to function call",
			expectedType: ErrorTypeRuntime,
		},
		{
			name:         "too many arguments",
			errorMsg:     "too many arguments to function call",
			expectedType: ErrorTypeRuntime,
		},
		{
			name:         "stream tail consistency",
			errorMsg:     "result of forcing a stream tail should be a pair or (), got: 5",
			expectedType: ErrorTypeRuntime,
		},

		// General errors
		{
			name:         "general error",
			errorMsg:     "something went wrong",
			expectedType: ErrorTypeGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ef.categorizeError(tt.errorMsg)
			if result != tt.expectedType {
				t.Errorf("categorizeError(%q) = %v, want %v", tt.errorMsg, result, tt.expectedType)
			}
		})
	}
}

func TestErrorFormatter_getErrorTypeLabel(t *testing.T) {
	ef := NewErrorFormatter()

	tests := []struct {
		errorType     ErrorType
		expectedLabel string
	}{
		{ErrorTypeSyntax, "Syntax Error"},
		{ErrorTypeRuntime, "Runtime Error"},
		{ErrorTypeUndefined, "Undefined Identifier"},
		{ErrorTypeTypeError, "Type Error"},
		{ErrorTypeGeneral, "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.expectedLabel, func(t *testing.T) {
			result := ef.getErrorTypeLabel(tt.errorType)
			if result != tt.expectedLabel {
				t.Errorf("getErrorTypeLabel(%v) = %q, want %q", tt.errorType, result, tt.expectedLabel)
			}
		})
	}
}

func TestErrorFormatter_FormatError(t *testing.T) {
	ef := NewErrorFormatter()

	tests := []struct {
		name     string
		err      error
		contains []string // Strings that should be present in the output
	}{
		{
			name:     "syntax error",
			err:      errors.New("line 1, column 5: unexpected )"),
			contains: []string{"Syntax Error:", "unexpected )"},
		},
		{
			name:     "undefined identifier error",
			err:      errors.New("unknown identifier: foo"),
			contains: []string{"Undefined Identifier:", "unknown identifier: foo"},
		},
		{
			name:     "runtime error",
			err:      errors.New("division by zero"),
			contains: []string{"Runtime Error:", "division by zero"},
		},
		{
			name:     "nil error",
			err:      nil,
			contains: []string{}, // Should return empty string
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ef.FormatError(tt.err)

			if tt.err == nil {
				if result != "" {
					t.Errorf("FormatError(nil) = %q, want empty string", result)
				}
				return
			}

			for _, substr := range tt.contains {
				if !strings.Contains(result, substr) {
					t.Errorf("FormatError(%v) = %q, should contain %q", tt.err, result, substr)
				}
			}
		})
	}
}

func TestErrorFormatter_generateSuggestion(t *testing.T) {
	ef := NewErrorFormatter()

	tests := []struct {
		name           string
		errorMsg       string
		expectedSubstr string // Expected substring in suggestion
	}{
		{
			name:           "unknown identifier",
			errorMsg:       "unknown identifier: foo",
			expectedSubstr: "defined before this point",
		},
		{
			name:           "incorrect number of arguments",
			errorMsg:       "incorrect number of arguments: +",
			expectedSubstr: "how many arguments",
		},
		{
			name:           "unterminated list",
			errorMsg:       "unexpected end of input, unterminated list",
			expectedSubstr: "balanced parentheses",
		},
		{
			name:           "division by zero",
			errorMsg:       "division by zero",
			expectedSubstr: "divisor is not zero",
		},
		{
			name:           "not a proper list",
			errorMsg:       "length: not a proper list: (1 . 2)",
			expectedSubstr: "proper list",
		},
		{
			name:           "not a procedure",
			errorMsg:       "5 is not a procedure",
			expectedSubstr: "calling a procedure",
		},
		{
			name:           "not a promise",
			errorMsg:       "force: not a promise: 5",
			expectedSubstr: "delay or cons-stream",
		},
		{
			name:           "no suggestion",
			errorMsg:       "random error message",
			expectedSubstr: "", // Should return empty suggestion
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ef.generateSuggestion(tt.errorMsg)

			if tt.expectedSubstr == "" {
				if result != "" {
					t.Errorf("generateSuggestion(%q) = %q, want empty string", tt.errorMsg, result)
				}
				return
			}

			if !strings.Contains(result, tt.expectedSubstr) {
				t.Errorf("generateSuggestion(%q) = %q, should contain %q", tt.errorMsg, result, tt.expectedSubstr)
			}
		})
	}
}

func TestErrorFormatter_FormatErrorWithSuggestion(t *testing.T) {
	ef := NewErrorFormatter()

	tests := []struct {
		name       string
		err        error
		suggestion string
		contains   []string
	}{
		{
			name:       "error with suggestion",
			err:        errors.New("unknown identifier: foo"),
			suggestion: "Check if the identifier is defined",
			contains:   []string{"Undefined Identifier:", "unknown identifier: foo", "Suggestion:", "Check if the identifier is defined"},
		},
		{
			name:       "error without suggestion",
			err:        errors.New("some error"),
			suggestion: "",
			contains:   []string{"Error:", "some error"},
		},
		{
			name:       "nil error",
			err:        nil,
			suggestion: "Some suggestion",
			contains:   []string{}, // Should return empty string
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ef.FormatErrorWithSuggestion(tt.err, tt.suggestion)

			if tt.err == nil {
				if result != "" {
					t.Errorf("FormatErrorWithSuggestion(nil, %q) = %q, want empty string", tt.suggestion, result)
				}
				return
			}

			for _, substr := range tt.contains {
				if !strings.Contains(result, substr) {
					t.Errorf("FormatErrorWithSuggestion(%v, %q) = %q, should contain %q", tt.err, tt.suggestion, result, substr)
				}
			}

			// If no suggestion provided, should not contain "Suggestion:"
			if tt.suggestion == "" && strings.Contains(result, "Suggestion:") {
				t.Errorf("FormatErrorWithSuggestion(%v, %q) = %q, should not contain 'Suggestion:' when no suggestion provided", tt.err, tt.suggestion, result)
			}
		})
	}
}

func TestErrorFormatter_FormatErrorWithSmartSuggestion(t *testing.T) {
	ef := NewErrorFormatter()

	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name:     "undefined identifier with auto suggestion",
			err:      errors.New("unknown identifier: foo"),
			contains: []string{"Undefined Identifier:", "unknown identifier: foo", "Suggestion:", "defined before this point"},
		},
		{
			name:     "syntax error with auto suggestion",
			err:      errors.New("unexpected end of input, unterminated list"),
			contains: []string{"Syntax Error:", "unterminated list", "Suggestion:", "balanced parentheses"},
		},
		{
			name:     "error without suggestion",
			err:      errors.New("random error"),
			contains: []string{"Error:", "random error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ef.FormatErrorWithSmartSuggestion(tt.err)

			for _, substr := range tt.contains {
				if !strings.Contains(result, substr) {
					t.Errorf("FormatErrorWithSmartSuggestion(%v) = %q, should contain %q", tt.err, result, substr)
				}
			}
		})
	}
}
