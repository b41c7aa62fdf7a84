package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/coursepilot/coursepilot-cli/internal/core/domain"
	"github.com/coursepilot/coursepilot-cli/internal/core/ports/driven"
	"github.com/coursepilot/coursepilot-cli/internal/core/ports/driving"
	"github.com/coursepilot/coursepilot-cli/internal/logger"
)

// Ensure QuizGenerator implements the interface.
var _ driving.QuizService = (*QuizGenerator)(nil)

const (
	defaultPreQuizQuestions  = 5
	defaultPostQuizQuestions = 3
)

const preQuizPromptTemplate = `You are a technical assessor. Based on the learner profile below, create %d multiple-choice questions that check the learner's current level in %s.

Learner profile:
"""%s"""

Return ONLY a JSON object of the form:
{"quiz": [{"question": "...", "options": ["A) ...", "B) ...", "C) ...", "D) ..."], "answer": "A"}]}`

const postQuizPromptTemplate = `You are a technical assessor. Create %d multiple-choice questions that check understanding of the material covered by these courses:

%s

Return ONLY a JSON object of the form:
{"quiz": [{"question": "...", "options": ["A) ...", "B) ...", "C) ...", "D) ..."], "answer": "A"}]}`

// quizPayload is the wire form of an LLM quiz reply.
type quizPayload struct {
	Quiz []domain.QuizQuestion `json:"quiz"`
}

// QuizGenerator produces pre- and post-learning quizzes via the LLM.
type QuizGenerator struct {
	llm driven.LLMService
}

// NewQuizGenerator creates a quiz service. The LLM may be nil, in which
// case the pre-quiz falls back to a fixed question and the post-quiz is
// empty.
func NewQuizGenerator(llm driven.LLMService) *QuizGenerator {
	return &QuizGenerator{llm: llm}
}

// GeneratePreQuiz creates a level-check quiz from the learner profile.
// Generation failures degrade to a single fixed question so the caller
// always has something to show.
func (s *QuizGenerator) GeneratePreQuiz(
	ctx context.Context, profileText, careerGoal string, numQuestions int,
) ([]domain.QuizQuestion, error) {
	if numQuestions < 1 {
		numQuestions = defaultPreQuizQuestions
	}

	logger.Section("Pre-Learning Quiz")

	if s.llm != nil {
		prompt := fmt.Sprintf(preQuizPromptTemplate, numQuestions, careerGoal, profileText)
		if questions := s.generateQuiz(ctx, prompt); len(questions) > 0 {
			return questions, nil
		}
	}

	logger.Warn("Quiz generation unavailable, using fallback question")
	return fallbackQuiz(careerGoal), nil
}

// GeneratePostQuiz creates a knowledge-check quiz over the recommended
// course titles. Failures yield an empty quiz rather than an error.
func (s *QuizGenerator) GeneratePostQuiz(
	ctx context.Context, courseTitles []string, numQuestions int,
) ([]domain.QuizQuestion, error) {
	if numQuestions < 1 {
		numQuestions = defaultPostQuizQuestions
	}
	if len(courseTitles) == 0 {
		return nil, fmt.Errorf("generating post quiz: %w", domain.ErrInvalidInput)
	}

	logger.Section("Post-Learning Quiz")

	if s.llm == nil {
		logger.Warn("No LLM configured, skipping post quiz")
		return nil, nil
	}

	prompt := fmt.Sprintf(postQuizPromptTemplate, numQuestions, "- "+strings.Join(courseTitles, "\n- "))
	return s.generateQuiz(ctx, prompt), nil
}

// generateQuiz runs one generation call and parses the quiz payload.
// Any failure is logged and returns nil.
func (s *QuizGenerator) generateQuiz(ctx context.Context, prompt string) []domain.QuizQuestion {
	reply, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   1000,
		Temperature: 0.7,
	})
	if err != nil {
		logger.Warn("Quiz generation failed: %v", err)
		return nil
	}

	var payload quizPayload
	if err := parseStructuredReply(reply, &payload); err != nil {
		logger.Warn("Unparseable quiz reply: %v", err)
		return nil
	}
	return payload.Quiz
}

// fallbackQuiz is the single-question quiz used when generation fails.
// It is a self-assessment, so it carries no answer key.
func fallbackQuiz(careerGoal string) []domain.QuizQuestion {
	return []domain.QuizQuestion{
		{
			Question: fmt.Sprintf("Have you worked with %s before?", careerGoal),
			Options: []string{
				"A) Never",
				"B) A little, in small experiments",
				"C) Regularly, on real projects",
				"D) Professionally, for several years",
			},
		},
	}
}
