package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"

	// Markup syntax errors
	ErrIncompleteEscape     ErrorCode = "INCOMPLETE_ESCAPE"
	ErrInvalidEscape        ErrorCode = "INVALID_ESCAPE"
	ErrUnterminatedOpenTag  ErrorCode = "UNTERMINATED_OPEN_TAG"
	ErrExpectingColor       ErrorCode = "EXPECTING_COLOR"
	ErrUnknownColor         ErrorCode = "UNKNOWN_COLOR"
	ErrInvalidHexColor      ErrorCode = "INVALID_HEX_COLOR"
	ErrEmptyOpenTag         ErrorCode = "EMPTY_OPEN_TAG"
	ErrNestingTooDeep       ErrorCode = "NESTING_TOO_DEEP"
	ErrUnterminatedCloseTag ErrorCode = "UNTERMINATED_CLOSE_TAG"
	ErrUnbalancedCloseTag   ErrorCode = "UNBALANCED_CLOSE_TAG"
	ErrUnbalancedOpenTag    ErrorCode = "UNBALANCED_OPEN_TAG"
)

var syntaxCodes = map[ErrorCode]bool{
	ErrIncompleteEscape:     true,
	ErrInvalidEscape:        true,
	ErrUnterminatedOpenTag:  true,
	ErrExpectingColor:       true,
	ErrUnknownColor:         true,
	ErrInvalidHexColor:      true,
	ErrEmptyOpenTag:         true,
	ErrNestingTooDeep:       true,
	ErrUnterminatedCloseTag: true,
	ErrUnbalancedCloseTag:   true,
	ErrUnbalancedOpenTag:    true,
}

// MintError represents a structured error with code and details
type MintError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MintError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MintError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MintError) Is(target error) bool {
	var targetErr *MintError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MintError with the given code and message
func New(code ErrorCode, message string) *MintError {
	return &MintError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MintError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MintError {
	return &MintError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MintError
func Wrap(err error, code ErrorCode, message string) *MintError {
	if err == nil {
		return nil
	}
	return &MintError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MintError {
	if err == nil {
		return nil
	}
	return &MintError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MintError) WithDetail(key string, value interface{}) *MintError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var mintErr *MintError
	if errors.As(err, &mintErr) {
		return mintErr.Code == code
	}
	return false
}

// IsSyntaxError reports whether err is a markup syntax error
func IsSyntaxError(err error) bool {
	var mintErr *MintError
	if errors.As(err, &mintErr) {
		return syntaxCodes[mintErr.Code]
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MintError
func GetErrorCode(err error) ErrorCode {
	var mintErr *MintError
	if errors.As(err, &mintErr) {
		return mintErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MintError
func GetErrorDetails(err error) map[string]interface{} {
	var mintErr *MintError
	if errors.As(err, &mintErr) {
		return mintErr.Details
	}
	return nil
}

// As is errors.As, so callers need a single errors import
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
