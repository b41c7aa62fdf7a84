package corpus

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// unsafeChars matches everything outside the conservative safe set:
// word characters, whitespace, and basic punctuation.
var unsafeChars = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?\-()\[\]:]`)

// listSeparators splits pseudo-list items on comma or semicolon.
var listSeparators = regexp.MustCompile(`[,;]`)

// CleanText sanitises a raw text field: characters outside the safe
// set are dropped, whitespace runs are collapsed to a single space, and
// null-ish values become empty. Applying CleanText twice yields the
// same result as applying it once.
func CleanText(text string) string {
	cleaned := unsafeChars.ReplaceAllString(text, " ")
	cleaned = strings.Join(strings.Fields(cleaned), " ")

	// The null-ish check runs on the cleaned form, so values that merely
	// clean down to a null marker ("'nan'", "NULL;") also come out empty.
	switch strings.ToLower(cleaned) {
	case "nan", "null", "none":
		return ""
	}
	return cleaned
}

// ParseListField parses a list-valued CSV field. Bracket-delimited
// pseudo-lists ("['Python', 'SQL']") are parsed structurally after
// normalising quote characters; anything else is split on comma or
// semicolon. Items pass through CleanText and empty items are dropped.
func ParseListField(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "nan") {
		return nil
	}

	if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
		normalised := strings.ReplaceAll(value, "'", `"`)
		var parsed []string
		if err := json.Unmarshal([]byte(normalised), &parsed); err == nil {
			return cleanItems(parsed)
		}
		// Fall through to the delimiter split on malformed lists.
	}

	items := listSeparators.Split(strings.Trim(value, "[]"), -1)
	return cleanItems(items)
}

// cleanItems cleans each item and drops the empties.
func cleanItems(items []string) []string {
	var out []string
	for _, item := range items {
		if cleaned := CleanText(item); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

// ParseRating coerces a raw rating value to a float. Missing or
// unparseable values become 0.0.
func ParseRating(value string) float64 {
	rating, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || rating < 0 {
		return 0.0
	}
	return rating
}
