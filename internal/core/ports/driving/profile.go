package driving

import (
	"context"

	"github.com/coursepilot/coursepilot-cli/internal/core/domain"
)

// ProfileService normalises raw learner profile text into a structured
// profile and persists it.
type ProfileService interface {
	// Normalize converts free profile text into a structured profile.
	// When the LLM is unavailable or returns garbage, a deterministic
	// keyword-based profile is substituted; the operation only fails
	// on empty input.
	Normalize(ctx context.Context, rawText string) (domain.Profile, error)

	// Save persists a normalised profile, generating a ProfileID when
	// absent.
	Save(ctx context.Context, profile domain.Profile) (domain.Profile, error)
}

// QuizService generates pre- and post-learning quizzes.
type QuizService interface {
	// GeneratePreQuiz creates a level-check quiz from the learner
	// profile and career goal. A fixed fallback quiz is returned when
	// generation fails.
	GeneratePreQuiz(ctx context.Context, profileText, careerGoal string, numQuestions int) ([]domain.QuizQuestion, error)

	// GeneratePostQuiz creates a knowledge-check quiz over the
	// recommended course titles.
	GeneratePostQuiz(ctx context.Context, courseTitles []string, numQuestions int) ([]domain.QuizQuestion, error)
}
