package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coursepilot/coursepilot-cli/internal/core/domain"
	"github.com/coursepilot/coursepilot-cli/internal/profileparse"
)

var (
	quizGoal      string
	quizProfile   string
	quizCourses   []string
	quizQuestions int
	quizJSON      bool
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Generate learning quizzes",
}

var quizPreCmd = &cobra.Command{
	Use:   "pre",
	Short: "Generate a level-check quiz before learning",
	RunE:  runQuizPre,
}

var quizPostCmd = &cobra.Command{
	Use:   "post",
	Short: "Generate a knowledge-check quiz over recommended courses",
	RunE:  runQuizPost,
}

func init() {
	quizPreCmd.Flags().StringVarP(&quizGoal, "goal", "g", "", "career goal (required)")
	quizPreCmd.Flags().StringVarP(&quizProfile, "profile", "p", "", "profile file (txt, md, pdf, docx)")
	quizPreCmd.Flags().IntVarP(&quizQuestions, "questions", "n", 0, "number of questions")
	quizPreCmd.Flags().BoolVar(&quizJSON, "json", false, "output quiz as JSON")
	_ = quizPreCmd.MarkFlagRequired("goal")

	quizPostCmd.Flags().StringSliceVarP(&quizCourses, "course", "c", nil, "course title (repeatable)")
	quizPostCmd.Flags().IntVarP(&quizQuestions, "questions", "n", 0, "number of questions")
	quizPostCmd.Flags().BoolVar(&quizJSON, "json", false, "output quiz as JSON")

	quizCmd.AddCommand(quizPreCmd)
	quizCmd.AddCommand(quizPostCmd)
	rootCmd.AddCommand(quizCmd)
}

func runQuizPre(cmd *cobra.Command, _ []string) error {
	if quizService == nil {
		return errors.New("quiz service not configured")
	}

	profileText := ""
	if quizProfile != "" {
		text, err := profileparse.ExtractText(quizProfile)
		if err != nil {
			return fmt.Errorf("reading profile: %w", err)
		}
		profileText = text
	}

	questions, err := quizService.GeneratePreQuiz(context.Background(), profileText, quizGoal, quizQuestions)
	if err != nil {
		return fmt.Errorf("quiz generation failed: %w", err)
	}

	return outputQuiz(cmd, questions)
}

func runQuizPost(cmd *cobra.Command, _ []string) error {
	if quizService == nil {
		return errors.New("quiz service not configured")
	}
	if len(quizCourses) == 0 {
		return errors.New("at least one --course is required")
	}

	questions, err := quizService.GeneratePostQuiz(context.Background(), quizCourses, quizQuestions)
	if err != nil {
		return fmt.Errorf("quiz generation failed: %w", err)
	}

	return outputQuiz(cmd, questions)
}

func outputQuiz(cmd *cobra.Command, questions []domain.QuizQuestion) error {
	if quizJSON {
		data, err := json.MarshalIndent(questions, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal quiz: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(questions) == 0 {
		cmd.Println("No quiz generated.")
		return nil
	}

	for i, q := range questions {
		cmd.Printf("%d. %s\n", i+1, q.Question)
		for _, option := range q.Options {
			cmd.Printf("   %s\n", option)
		}
		// Self-assessment questions have no answer key.
		if answer := strings.TrimSpace(q.Answer); answer != "" {
			cmd.Printf("   Answer: %s\n", answer)
		}
		cmd.Println()
	}
	return nil
}
