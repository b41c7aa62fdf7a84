package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseStructuredReply extracts and unmarshals the JSON payload of a
// best-effort LLM reply. Markdown code fences are stripped and the
// reply is narrowed to its outermost JSON object or array, since models
// routinely wrap JSON in commentary. Call sites substitute a fixed
// fallback value when parsing fails.
func parseStructuredReply(raw string, v any) error {
	cleaned := stripFences(raw)

	if extracted := extractJSON(cleaned); extracted != "" {
		cleaned = extracted
	}

	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("parsing structured reply: %w", err)
	}
	return nil
}

// stripFences removes surrounding markdown code fences.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// extractJSON returns the outermost {...} or [...] span, or "" when the
// text contains neither.
func extractJSON(s string) string {
	for _, pair := range [][2]byte{{'{', '}'}, {'[', ']'}} {
		start := strings.IndexByte(s, pair[0])
		end := strings.LastIndexByte(s, pair[1])
		if start >= 0 && end > start {
			return s[start : end+1]
		}
	}
	return ""
}
