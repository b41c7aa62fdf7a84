package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/coursepilot/coursepilot-cli/internal/core/domain"
	"github.com/coursepilot/coursepilot-cli/internal/core/ports/driven"
	"github.com/coursepilot/coursepilot-cli/internal/core/ports/driving"
	"github.com/coursepilot/coursepilot-cli/internal/logger"
)

// Ensure Recommender implements the interface.
var _ driving.RecommendService = (*Recommender)(nil)

const (
	// defaultTopK is the number of courses returned per request.
	defaultTopK = 5

	// baseQuerySuffix biases retrieval toward course material.
	baseQuerySuffix = "programming development tutorial course"

	// defaultSimilarity is used when the store reports no distance.
	defaultSimilarity = 0.5
)

// Recommender retrieves, filters, and ranks courses from the index.
// All retrieval failures degrade to fallback courses; the service never
// surfaces an error to the caller.
type Recommender struct {
	index driven.CourseIndex
	topK  int
}

// NewRecommender creates a recommender over the given index. The index
// may be nil, in which case every request is served from fallback.
func NewRecommender(index driven.CourseIndex) *Recommender {
	return &Recommender{
		index: index,
		topK:  defaultTopK,
	}
}

// SetTopK overrides the result count. Values below 1 are ignored.
func (r *Recommender) SetTopK(topK int) {
	if topK >= 1 {
		r.topK = topK
	}
}

// RecommendCourses returns ranked course recommendations for a learner.
// A nil analysis is replaced by a minimal default; an empty or failed
// retrieval is replaced by fallback courses, so the returned list is
// never empty.
func (r *Recommender) RecommendCourses(
	ctx context.Context, profileText, careerGoal string, analysis *domain.ProfileAnalysis,
) domain.Recommendation {
	logger.Section("Course Recommendation")
	logger.Debug("Career goal: %q", careerGoal)

	if analysis == nil {
		logger.Debug("No profile analysis provided, synthesising default")
		fallbackAnalysis := domain.DefaultProfileAnalysis(careerGoal)
		analysis = &fallbackAnalysis
	}

	baseQuery := fmt.Sprintf("%s %s", careerGoal, baseQuerySuffix)
	courses := r.search(ctx, baseQuery, *analysis, r.topK)

	if len(courses) == 0 {
		logger.Warn("No courses retrieved, using fallback")
		courses = fallbackCourses(careerGoal)
	}

	logger.Info("Returning %d courses", len(courses))
	return domain.Recommendation{Courses: courses}
}

// search runs the enriched query against the index and post-processes
// the candidates. Any error is logged and converted into an empty
// result.
func (r *Recommender) search(
	ctx context.Context, query string, analysis domain.ProfileAnalysis, topK int,
) []domain.RankedCourse {
	if r.index == nil {
		logger.Warn("Course index not configured")
		return nil
	}

	enriched := composeQuery(query, analysis)
	logger.Debug("Enriched query: %q", enriched)

	// Over-fetch so the suitability filter and title dedup still leave
	// enough candidates.
	hits, err := r.index.Query(ctx, enriched, topK*2)
	if err != nil {
		logger.Warn("Index query failed: %v", err)
		return nil
	}
	logger.Debug("Raw candidates: %d", len(hits))

	courses := processHits(hits, analysis)

	sort.SliceStable(courses, func(i, j int) bool {
		return courses[i].Similarity > courses[j].Similarity
	})

	courses = dedupeByTitle(courses)
	if len(courses) > topK {
		courses = courses[:topK]
	}
	return courses
}

// composeQuery appends profile-derived clauses to the base query in a
// fixed order, biasing the text search toward profile vocabulary.
func composeQuery(base string, analysis domain.ProfileAnalysis) string {
	parts := []string{base}

	if len(analysis.ExtractedSkills) > 0 {
		parts = append(parts, "skills: "+strings.Join(capList(analysis.ExtractedSkills, 3), ", "))
	}
	if analysis.ExperienceLevel != "" {
		parts = append(parts, analysis.ExperienceLevel+" level")
	}
	if len(analysis.CareerInterests) > 0 {
		parts = append(parts, "career: "+strings.Join(capList(analysis.CareerInterests, 2), ", "))
	}
	if len(analysis.LearningGoals) > 0 {
		parts = append(parts, "learn: "+strings.Join(capList(analysis.LearningGoals, 2), ", "))
	}

	return strings.Join(parts, " ")
}

// capList truncates a list to at most max items.
func capList(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}

// processHits converts index hits into ranked courses, applying the
// similarity conversion, metadata defaults, and the suitability filter.
func processHits(hits []driven.CourseHit, analysis domain.ProfileAnalysis) []domain.RankedCourse {
	courses := make([]domain.RankedCourse, 0, len(hits))

	for i, hit := range hits {
		course := domain.RankedCourse{
			Title:      metaString(hit.Document.Metadata, "title", fmt.Sprintf("Course %d", i+1)),
			Text:       hit.Document.DocumentText,
			Similarity: similarityFromDistance(hit.Distance),
			Source:     domain.SourceIndex,
			Instructor: metaString(hit.Document.Metadata, "instructor", "Unknown"),
			Level:      metaString(hit.Document.Metadata, "level", "All Levels"),
			Rating:     metaFloat(hit.Document.Metadata, "rating", 4.0),
			Duration:   metaString(hit.Document.Metadata, "duration", "Not specified"),
			Link:       metaString(hit.Document.Metadata, "link", "#"),
			Price:      metaString(hit.Document.Metadata, "price", "Free"),
			Skills:     metaString(hit.Document.Metadata, "skills", ""),
		}

		if !domain.LevelSuitable(analysis.ExperienceLevel, course.Level) {
			logger.Debug("Filtered by level: %q (%s)", course.Title, course.Level)
			continue
		}

		logger.Debug("Candidate: %q (similarity %.2f)", course.Title, course.Similarity)
		courses = append(courses, course)
	}

	return courses
}

// similarityFromDistance converts a store-native distance into a [0,1]
// similarity. A missing or zero distance yields the neutral default;
// out-of-range distances are clamped rather than trusted.
func similarityFromDistance(distance float64) float64 {
	if distance == 0 {
		return defaultSimilarity
	}
	similarity := 1 - distance
	if similarity < 0 {
		return 0
	}
	if similarity > 1 {
		return 1
	}
	return similarity
}

// dedupeByTitle keeps the first occurrence of each title. Input must
// already be sorted by descending similarity.
func dedupeByTitle(courses []domain.RankedCourse) []domain.RankedCourse {
	seen := make(map[string]bool, len(courses))
	deduped := make([]domain.RankedCourse, 0, len(courses))
	for _, course := range courses {
		if seen[course.Title] {
			continue
		}
		seen[course.Title] = true
		deduped = append(deduped, course)
	}
	return deduped
}

// metaString reads a string metadata value with a default.
func metaString(metadata map[string]any, key, fallback string) string {
	if value, ok := metadata[key].(string); ok && value != "" {
		return value
	}
	return fallback
}

// metaFloat reads a numeric metadata value with a default. Stores may
// round-trip numbers as strings, so those are parsed too.
func metaFloat(metadata map[string]any, key string, fallback float64) float64 {
	switch value := metadata[key].(type) {
	case float64:
		return value
	case int:
		return float64(value)
	case string:
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
