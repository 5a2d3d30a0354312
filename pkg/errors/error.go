// Package errors provides structured error handling with typed error codes.
//
// Error codes are organized into categories:
//   - General errors (1-99): Unknown and general errors
//   - Validation errors (100-199): Invalid parameters, intents, and configuration
//   - Resolution errors (200-299): Symbol resolution failures
//   - Transport errors (300-399): Network-level failures reaching the brokerage
//   - Brokerage errors (400-499): Rejections and unparseable brokerage responses
//   - Ingestion errors (500-599): Inbound webhook payload failures
//
// Usage:
//
//	// Create a new error
//	err := errors.New(errors.ErrCodeInvalidParameter, "invalid parameter value")
//
//	// Create a formatted error
//	err := errors.Newf(errors.ErrCodeUnsupportedSymbol, "symbol %s is not tradable", symbol)
//
//	// Wrap an existing error
//	err := errors.Wrap(errors.ErrCodeTransport, "failed to reach brokerage", originalErr)
//
//	// Check error code
//	if errors.HasCode(err, errors.ErrCodeUnsupportedSymbol) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error represents a structured error with an error code and message.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Newf creates a new Error with the given code and formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   nil,
	}
}

// Wrap wraps an existing error with a new Error containing the given code and message.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an existing error with a new Error containing the given code and formatted message.
func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard errors.Is function.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard errors.As function.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode extracts the ErrorCode from an error if it's an *Error type.
// Returns ErrCodeUnknown if the error is not an *Error type.
func GetCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ErrCodeUnknown
}

// HasCode checks if an error has a specific ErrorCode.
func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// UnsupportedSymbolError represents a resolution failure for a symbol that is
// neither a known proxy alias nor a member of the verified-tradable set.
// It carries the verified symbols so callers can surface them as guidance.
type UnsupportedSymbolError struct {
	Symbol   string   // The symbol as requested by the caller
	Verified []string // Symbols known to be orderable without substitution
}

// NewUnsupportedSymbolError creates a new UnsupportedSymbolError.
func NewUnsupportedSymbolError(symbol string, verified []string) *UnsupportedSymbolError {
	return &UnsupportedSymbolError{
		Symbol:   symbol,
		Verified: verified,
	}
}

// Error implements the error interface.
func (e *UnsupportedSymbolError) Error() string {
	return fmt.Sprintf("%s not in verified working symbols. Use: %s",
		e.Symbol, strings.Join(e.Verified, ", "))
}

// IsUnsupportedSymbolError checks if an error is an UnsupportedSymbolError.
// It uses errors.As to check the error chain.
func IsUnsupportedSymbolError(err error) bool {
	var unsupportedErr *UnsupportedSymbolError

	return errors.As(err, &unsupportedErr)
}
