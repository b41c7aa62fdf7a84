package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursepilot/coursepilot-cli/internal/core/domain"
	"github.com/coursepilot/coursepilot-cli/internal/core/ports/driven"
)

func hit(title, level string, distance float64) driven.CourseHit {
	return driven.CourseHit{
		Document: domain.IndexedDocument{
			ID:           "course_" + title,
			DocumentText: "COURSE TITLE: " + title,
			Metadata: map[string]any{
				"title": title,
				"level": level,
			},
		},
		Distance: distance,
	}
}

func TestRecommendCourses_RanksAndTruncates(t *testing.T) {
	index := &mockIndex{
		queryFunc: func(_ context.Context, _ string, _ int) ([]driven.CourseHit, error) {
			return []driven.CourseHit{
				hit("Course A", "beginner", 0.4),
				hit("Course B", "beginner", 0.1),
				hit("Course C", "all levels", 0.3),
				hit("Course D", "beginner", 0.2),
				hit("Course E", "beginner", 0.25),
				hit("Course F", "beginner", 0.35),
			}, nil
		},
	}

	r := NewRecommender(index)
	analysis := domain.ProfileAnalysis{ExperienceLevel: "beginner"}
	rec := r.RecommendCourses(context.Background(), "", "python developer", &analysis)

	require.Len(t, rec.Courses, defaultTopK)

	for i := 1; i < len(rec.Courses); i++ {
		assert.GreaterOrEqual(t, rec.Courses[i-1].Similarity, rec.Courses[i].Similarity)
	}
	assert.Equal(t, "Course B", rec.Courses[0].Title)
	assert.InDelta(t, 0.9, rec.Courses[0].Similarity, 1e-9)
	assert.Equal(t, domain.SourceIndex, rec.Courses[0].Source)
}

func TestRecommendCourses_OverFetches(t *testing.T) {
	index := &mockIndex{}
	r := NewRecommender(index)
	r.SetTopK(4)

	r.RecommendCourses(context.Background(), "", "data analyst", nil)

	assert.Equal(t, 8, index.lastLimit)
}

func TestRecommendCourses_FiltersUnsuitableLevels(t *testing.T) {
	index := &mockIndex{
		queryFunc: func(_ context.Context, _ string, _ int) ([]driven.CourseHit, error) {
			return []driven.CourseHit{
				hit("Advanced Internals", "advanced", 0.1),
				hit("Gentle Intro", "beginner", 0.3),
				hit("For Everyone", "all levels", 0.2),
			}, nil
		},
	}

	r := NewRecommender(index)
	analysis := domain.ProfileAnalysis{ExperienceLevel: "beginner"}
	rec := r.RecommendCourses(context.Background(), "", "python developer", &analysis)

	titles := make([]string, 0, len(rec.Courses))
	for _, course := range rec.Courses {
		titles = append(titles, course.Title)
	}
	assert.NotContains(t, titles, "Advanced Internals")
	assert.Contains(t, titles, "Gentle Intro")
	assert.Contains(t, titles, "For Everyone")
}

func TestRecommendCourses_DeduplicatesByTitle(t *testing.T) {
	index := &mockIndex{
		queryFunc: func(_ context.Context, _ string, _ int) ([]driven.CourseHit, error) {
			return []driven.CourseHit{
				hit("Same Course", "beginner", 0.4),
				hit("Same Course", "beginner", 0.2),
				hit("Other Course", "beginner", 0.3),
			}, nil
		},
	}

	r := NewRecommender(index)
	analysis := domain.ProfileAnalysis{ExperienceLevel: "beginner"}
	rec := r.RecommendCourses(context.Background(), "", "python developer", &analysis)

	require.Len(t, rec.Courses, 2)
	assert.Equal(t, "Same Course", rec.Courses[0].Title)
	// The higher-similarity duplicate survives.
	assert.InDelta(t, 0.8, rec.Courses[0].Similarity, 1e-9)
	assert.Equal(t, "Other Course", rec.Courses[1].Title)
}

func TestRecommendCourses_EmptyIndexFallsBack(t *testing.T) {
	r := NewRecommender(&mockIndex{})
	rec := r.RecommendCourses(context.Background(), "", "data engineer", nil)

	require.Len(t, rec.Courses, 3)
	for _, course := range rec.Courses {
		assert.Equal(t, domain.SourceFallback, course.Source)
		assert.Contains(t, course.Title, "data engineer")
	}
	assert.InDelta(t, 0.9, rec.Courses[0].Similarity, 1e-9)
	assert.InDelta(t, 0.8, rec.Courses[1].Similarity, 1e-9)
	assert.InDelta(t, 0.7, rec.Courses[2].Similarity, 1e-9)
}

func TestRecommendCourses_QueryErrorFallsBack(t *testing.T) {
	index := &mockIndex{
		queryFunc: func(_ context.Context, _ string, _ int) ([]driven.CourseHit, error) {
			return nil, errors.New("index offline")
		},
	}

	r := NewRecommender(index)
	rec := r.RecommendCourses(context.Background(), "", "web developer", nil)

	require.NotEmpty(t, rec.Courses)
	for _, course := range rec.Courses {
		assert.Equal(t, domain.SourceFallback, course.Source)
	}
}

func TestRecommendCourses_NilIndexFallsBack(t *testing.T) {
	r := NewRecommender(nil)
	rec := r.RecommendCourses(context.Background(), "", "ml engineer", nil)

	require.NotEmpty(t, rec.Courses)
	assert.Equal(t, domain.SourceFallback, rec.Courses[0].Source)
}

func TestRecommendCourses_MetadataDefaults(t *testing.T) {
	index := &mockIndex{
		queryFunc: func(_ context.Context, _ string, _ int) ([]driven.CourseHit, error) {
			return []driven.CourseHit{
				{
					Document: domain.IndexedDocument{
						ID:           "course_0",
						DocumentText: "bare document",
						Metadata:     map[string]any{},
					},
					Distance: 0.2,
				},
			}, nil
		},
	}

	r := NewRecommender(index)
	analysis := domain.ProfileAnalysis{ExperienceLevel: "advanced"}
	rec := r.RecommendCourses(context.Background(), "", "python developer", &analysis)

	require.Len(t, rec.Courses, 1)
	course := rec.Courses[0]
	assert.Equal(t, "Course 1", course.Title)
	assert.Equal(t, "Unknown", course.Instructor)
	assert.Equal(t, "All Levels", course.Level)
	assert.Equal(t, 4.0, course.Rating)
	assert.Equal(t, "Not specified", course.Duration)
	assert.Equal(t, "#", course.Link)
	assert.Equal(t, "Free", course.Price)
}

func TestComposeQuery_ClauseOrderAndCaps(t *testing.T) {
	analysis := domain.ProfileAnalysis{
		ExtractedSkills: []string{"python", "sql", "docker", "aws"},
		ExperienceLevel: "intermediate",
		CareerInterests: []string{"backend", "data", "cloud"},
		LearningGoals:   []string{"apis", "pipelines", "scaling"},
	}

	got := composeQuery("base query", analysis)

	assert.Equal(t,
		"base query skills: python, sql, docker intermediate level career: backend, data learn: apis, pipelines",
		got)
}

func TestComposeQuery_EmptyAnalysis(t *testing.T) {
	assert.Equal(t, "base query", composeQuery("base query", domain.ProfileAnalysis{}))
}

func TestSimilarityFromDistance(t *testing.T) {
	tests := []struct {
		distance float64
		expected float64
	}{
		{0, 0.5},
		{0.25, 0.75},
		{1, 0},
		{1.6, 0},
		{-0.5, 1},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, similarityFromDistance(tt.distance), 1e-9,
			"distance %v", tt.distance)
	}
}
