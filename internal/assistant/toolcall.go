package assistant

import (
	"encoding/json"
	"strings"
)

// toolCall is the JSON shape a model uses to request a tool invocation.
type toolCall struct {
	Tool      string          `json:"tool"`
	Arguments json.RawMessage `json:"arguments"`
}

// parseToolCall tries to read a tool invocation from model output. Models
// often wrap JSON in markdown fences or lead with prose, so the parser
// extracts the first balanced object and accepts it only if it names a tool.
func parseToolCall(content string) (toolCall, bool) {
	var call toolCall

	candidate := extractJSONObject(content)
	if candidate == "" {
		return call, false
	}
	if err := json.Unmarshal([]byte(candidate), &call); err != nil {
		return call, false
	}
	return call, call.Tool != ""
}

// extractJSONObject returns the first balanced {...} in the text, ignoring
// braces inside JSON strings.
func extractJSONObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
