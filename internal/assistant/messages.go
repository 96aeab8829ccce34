package assistant

import (
	"errors"
	"fmt"

	"github.com/oakmund/finsight/internal/core"
)

// User-facing error strings. Each begins with a warning glyph and a short
// classification label the UI layer keys on for conditional rendering.
const (
	msgNoCredential = "⚠️ Error: No API key configured. Please set your provider API key and try again."
	msgAuthFailed   = "⚠️ API Error: Unable to connect to the service. This might be due to rate limiting on the free tier. Please wait a moment and try again."
	msgRateLimited  = "⚠️ Rate Limit: Too many requests. Please wait a moment and try again."
	msgTokenLimit   = "⚠️ Token Limit: Request too large. Please try a shorter query."
)

// UserMessage maps a classified failure to the string shown to the user.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrConfigMissing):
		return msgNoCredential
	case errors.Is(err, core.ErrAuthFailed):
		return msgAuthFailed
	case errors.Is(err, core.ErrRateLimited):
		return msgRateLimited
	case errors.Is(err, core.ErrPayloadTooLarge):
		return msgTokenLimit
	default:
		return fmt.Sprintf("⚠️ Error: %v", err)
	}
}
