package core

import (
	"fmt"
	"strings"
)

// Error represents a structured error with code and optional cause.
type Error struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is matching by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// WrapError creates a new error with the same code but with a cause.
func WrapError(base *Error, cause error) *Error {
	return &Error{
		Code:    base.Code,
		Message: base.Message,
		Cause:   cause,
	}
}

// Predefined errors
var (
	// Calculator errors
	ErrInvalidArgument = &Error{Code: "INVALID_ARGUMENT", Message: "invalid argument"}

	// Config errors
	ErrConfigInvalid = &Error{Code: "CONFIG_INVALID", Message: "configuration invalid"}
	ErrConfigMissing = &Error{Code: "CONFIG_MISSING", Message: "no API key configured"}

	// Provider errors
	ErrAuthFailed      = &Error{Code: "AUTH_FAILED", Message: "provider authentication failed"}
	ErrRateLimited     = &Error{Code: "RATE_LIMITED", Message: "provider rate limit exceeded"}
	ErrPayloadTooLarge = &Error{Code: "PAYLOAD_TOO_LARGE", Message: "request exceeds token limit"}
	ErrLLMFailed       = &Error{Code: "LLM_FAILED", Message: "LLM request failed"}

	// Session errors
	ErrSessionNotFound = &Error{Code: "SESSION_NOT_FOUND", Message: "session not found"}
)

// ClassifyProviderError maps a transport/provider failure into the error
// taxonomy. Providers expose no structured metadata beyond a message string,
// so matching is by substring and embedded status code.
func ClassifyProviderError(err error) *Error {
	if err == nil {
		return nil
	}
	if coreErr, ok := err.(*Error); ok {
		return coreErr
	}

	msg := err.Error()
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(msg, "401"),
		strings.Contains(lower, "authentication"),
		strings.Contains(msg, "User not found"):
		return WrapError(ErrAuthFailed, err)
	case strings.Contains(msg, "429"),
		strings.Contains(lower, "rate limit"):
		return WrapError(ErrRateLimited, err)
	case strings.Contains(msg, "402"),
		strings.Contains(lower, "token"):
		return WrapError(ErrPayloadTooLarge, err)
	default:
		return WrapError(ErrLLMFailed, err)
	}
}
