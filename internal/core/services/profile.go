package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/coursepilot/coursepilot-cli/internal/core/domain"
	"github.com/coursepilot/coursepilot-cli/internal/core/ports/driven"
	"github.com/coursepilot/coursepilot-cli/internal/core/ports/driving"
	"github.com/coursepilot/coursepilot-cli/internal/corpus"
	"github.com/coursepilot/coursepilot-cli/internal/logger"
)

// Ensure ProfileNormalizer implements the interface.
var _ driving.ProfileService = (*ProfileNormalizer)(nil)

const normalizePromptTemplate = `You are a JSON extraction assistant. Convert the following user profile text into a JSON object with these fields:
ProfileId, Name, ExperienceYears, ExperienceSummary, Education, Skills, CareerGoal, Interests.

- Provide values in English.
- If a field is missing, use an empty string or an empty list for Skills and Interests.
- Return ONLY valid JSON (no extra commentary).

Profile text:
"""%s"""`

// experienceYearsPattern finds a years-of-experience statement.
var experienceYearsPattern = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*year`)

// ProfileNormalizer converts raw profile text into a structured profile
// via the LLM, with a deterministic keyword fallback, and persists the
// result.
type ProfileNormalizer struct {
	llm   driven.LLMService
	store driven.ProfileStore
}

// NewProfileNormalizer creates a profile service. The LLM may be nil,
// in which case only the keyword fallback is used. The store may be nil
// when persistence is not needed.
func NewProfileNormalizer(llm driven.LLMService, store driven.ProfileStore) *ProfileNormalizer {
	return &ProfileNormalizer{
		llm:   llm,
		store: store,
	}
}

// profilePayload is the tolerant wire form of an LLM-normalised
// profile. Skills and Interests sometimes come back as comma-joined
// strings instead of lists.
type profilePayload struct {
	ProfileID         string `json:"ProfileId"`
	Name              string `json:"Name"`
	ExperienceYears   any    `json:"ExperienceYears"`
	ExperienceSummary string `json:"ExperienceSummary"`
	Education         string `json:"Education"`
	Skills            any    `json:"Skills"`
	CareerGoal        string `json:"CareerGoal"`
	Interests         any    `json:"Interests"`
}

// Normalize converts free profile text into a structured profile. The
// LLM path is best-effort: a failed call or unparseable reply degrades
// to the deterministic keyword profile. Only empty input is an error.
func (s *ProfileNormalizer) Normalize(ctx context.Context, rawText string) (domain.Profile, error) {
	rawText = strings.TrimSpace(rawText)
	if rawText == "" {
		return domain.Profile{}, fmt.Errorf("normalising profile: %w", domain.ErrInvalidInput)
	}

	logger.Section("Profile Normalisation")

	if s.llm != nil {
		reply, err := s.llm.Generate(ctx, fmt.Sprintf(normalizePromptTemplate, rawText), driven.GenerateOptions{
			MaxTokens:   500,
			Temperature: 0,
		})
		if err == nil {
			var payload profilePayload
			if parseErr := parseStructuredReply(reply, &payload); parseErr == nil {
				logger.Info("Profile normalised by %s", s.llm.ModelName())
				return payload.toProfile(), nil
			} else {
				logger.Warn("Unparseable normalisation reply: %v", parseErr)
			}
		} else {
			logger.Warn("LLM normalisation failed: %v", err)
		}
	}

	logger.Info("Using keyword fallback profile")
	return keywordProfile(rawText), nil
}

// Save persists a normalised profile.
func (s *ProfileNormalizer) Save(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	if s.store == nil {
		return domain.Profile{}, fmt.Errorf("saving profile: no profile store configured")
	}
	return s.store.Save(ctx, profile)
}

// toProfile converts the tolerant payload into the domain profile.
func (p profilePayload) toProfile() domain.Profile {
	return domain.Profile{
		ProfileID:         p.ProfileID,
		Name:              p.Name,
		ExperienceYears:   anyToString(p.ExperienceYears),
		ExperienceSummary: p.ExperienceSummary,
		Education:         p.Education,
		Skills:            anyToList(p.Skills),
		CareerGoal:        p.CareerGoal,
		Interests:         anyToList(p.Interests),
	}
}

// anyToString renders a scalar JSON value as a string.
func anyToString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return fmt.Sprintf("%g", value)
	default:
		return ""
	}
}

// anyToList accepts either a JSON list of strings or a comma-joined
// string.
func anyToList(v any) []string {
	switch value := v.(type) {
	case []any:
		var out []string
		for _, item := range value {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case string:
		var out []string
		for _, item := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	default:
		return nil
	}
}

// keywordProfile derives a deterministic profile from raw text using
// the corpus keyword vocabulary, so recommendation still works when the
// LLM is unavailable.
func keywordProfile(rawText string) domain.Profile {
	profile := domain.Profile{
		Skills:            corpus.ExtractKeywords(rawText),
		ExperienceSummary: summariseText(rawText),
	}
	if match := experienceYearsPattern.FindStringSubmatch(rawText); match != nil {
		profile.ExperienceYears = match[1] + " years"
	}
	return profile
}

// summariseText keeps the first 200 characters of the profile as a
// crude summary.
func summariseText(text string) string {
	const maxSummary = 200
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > maxSummary {
		return text[:maxSummary]
	}
	return text
}
