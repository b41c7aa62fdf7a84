package domain

import (
	"strconv"
	"strings"
)

// allowedLevels maps a learner's experience level to the course level
// labels admissible for recommendation. Lower course levels are always
// admissible for more experienced learners; the empty label covers
// courses with no level set.
var allowedLevels = map[string][]string{
	"beginner":     {"beginner", "all levels", ""},
	"intermediate": {"beginner", "intermediate", "all levels", ""},
	"advanced":     {"beginner", "intermediate", "advanced", "all levels", ""},
}

// unknownLevels is the admissible set for unrecognised experience levels.
var unknownLevels = []string{"all levels", ""}

// LevelSuitable reports whether a course with the given level label may
// be recommended to a learner with the given experience level. The test
// is substring containment so compound labels such as
// "Beginner to Intermediate" still match.
func LevelSuitable(experienceLevel, courseLevel string) bool {
	allowed, ok := allowedLevels[strings.ToLower(strings.TrimSpace(experienceLevel))]
	if !ok {
		allowed = unknownLevels
	}

	courseLevel = strings.ToLower(strings.TrimSpace(courseLevel))
	for _, label := range allowed {
		// The empty label admits only courses with no level set; a
		// substring test against "" would admit everything.
		if label == "" {
			if courseLevel == "" {
				return true
			}
			continue
		}
		if strings.Contains(courseLevel, label) {
			return true
		}
	}
	return false
}

// experienceLevelFromYears infers a coarse experience level from a
// free-text years-of-experience value.
func experienceLevelFromYears(years string) string {
	years = strings.TrimSpace(years)
	if years == "" {
		return ""
	}

	// Take the first number in the string, e.g. "3+ years" -> 3.
	var digits strings.Builder
	for _, r := range years {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			continue
		}
		if digits.Len() > 0 {
			break
		}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return ""
	}

	switch {
	case n < 2:
		return "beginner"
	case n < 5:
		return "intermediate"
	default:
		return "advanced"
	}
}
