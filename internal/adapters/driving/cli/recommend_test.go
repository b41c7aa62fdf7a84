package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursepilot/coursepilot-cli/internal/core/domain"
)

// stubRecommendService returns a fixed recommendation.
type stubRecommendService struct {
	recommendation domain.Recommendation
	lastGoal       string
}

func (s *stubRecommendService) RecommendCourses(
	_ context.Context, _, careerGoal string, _ *domain.ProfileAnalysis,
) domain.Recommendation {
	s.lastGoal = careerGoal
	return s.recommendation
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRecommendCmd_RequiresGoal(t *testing.T) {
	originalService := recommendService
	recommendService = &stubRecommendService{}
	defer func() { recommendService = originalService }()

	_, err := runCommand(t, "recommend")
	assert.Error(t, err)
}

func TestRecommendCmd_PrintsCourses(t *testing.T) {
	originalService := recommendService
	stub := &stubRecommendService{
		recommendation: domain.Recommendation{Courses: []domain.RankedCourse{
			{
				Title:      "Python Bootcamp",
				Similarity: 0.91,
				Source:     domain.SourceIndex,
				Instructor: "Jose",
				Level:      "beginner",
				Rating:     4.6,
				Duration:   "22 hours",
			},
		}},
	}
	recommendService = stub
	defer func() { recommendService = originalService }()

	out, err := runCommand(t, "recommend", "--goal", "python developer")
	require.NoError(t, err)

	assert.Equal(t, "python developer", stub.lastGoal)
	assert.Contains(t, out, "Python Bootcamp")
	assert.Contains(t, out, "0.91")
}

func TestRecommendCmd_JSONOutput(t *testing.T) {
	originalService := recommendService
	recommendService = &stubRecommendService{
		recommendation: domain.Recommendation{Courses: []domain.RankedCourse{
			{Title: "Go Basics", Similarity: 0.8, Source: domain.SourceFallback},
		}},
	}
	defer func() { recommendService = originalService }()

	out, err := runCommand(t, "recommend", "--goal", "go developer", "--json")
	require.NoError(t, err)

	assert.Contains(t, out, `"course_title": "Go Basics"`)
	assert.Contains(t, out, `"source": "fallback"`)
}

func TestRecommendCmd_NoService(t *testing.T) {
	originalService := recommendService
	recommendService = nil
	defer func() { recommendService = originalService }()

	_, err := runCommand(t, "recommend", "--goal", "anything")
	assert.Error(t, err)
}
