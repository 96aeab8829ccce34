package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Format(t *testing.T) {
	err := &Error{Code: "TEST", Message: "something broke"}
	if err.Error() != "[TEST] something broke" {
		t.Errorf("unexpected format: %s", err.Error())
	}

	wrapped := WrapError(err, fmt.Errorf("root cause"))
	if wrapped.Error() != "[TEST] something broke: root cause" {
		t.Errorf("unexpected wrapped format: %s", wrapped.Error())
	}
}

func TestError_Is(t *testing.T) {
	wrapped := WrapError(ErrRateLimited, fmt.Errorf("429 from provider"))
	if !errors.Is(wrapped, ErrRateLimited) {
		t.Error("wrapped error should match its base by code")
	}
	if errors.Is(wrapped, ErrAuthFailed) {
		t.Error("wrapped error should not match a different code")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	wrapped := WrapError(ErrLLMFailed, cause)
	if !errors.Is(wrapped, cause) {
		t.Error("unwrap should expose the cause")
	}
}

func TestClassifyProviderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want *Error
	}{
		{"status 401", errors.New("request failed with status 401"), ErrAuthFailed},
		{"authentication text", errors.New("Authentication failed for key"), ErrAuthFailed},
		{"user not found", errors.New("User not found"), ErrAuthFailed},
		{"status 429", errors.New("got 429 from upstream"), ErrRateLimited},
		{"rate limit text", errors.New("Rate Limit exceeded, slow down"), ErrRateLimited},
		{"status 402", errors.New("got 402 payment required"), ErrPayloadTooLarge},
		{"token text", errors.New("maximum context: token count exceeded"), ErrPayloadTooLarge},
		{"anything else", errors.New("connection reset by peer"), ErrLLMFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyProviderError(tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("ClassifyProviderError(%v) = %s, want %s", tt.err, got.Code, tt.want.Code)
			}
			if got.Cause == nil {
				t.Error("classified error should keep the original cause")
			}
		})
	}
}

func TestClassifyProviderError_PassthroughAndNil(t *testing.T) {
	if ClassifyProviderError(nil) != nil {
		t.Error("nil should classify to nil")
	}
	if got := ClassifyProviderError(ErrConfigMissing); got != ErrConfigMissing {
		t.Error("core errors should pass through unchanged")
	}
}
