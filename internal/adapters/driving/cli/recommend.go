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
	recommendGoal    string
	recommendProfile string
	recommendText    string
	recommendJSON    bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend courses for a learner",
	Long: `Recommends courses matched to a learner profile and career goal.
The profile can be supplied as free text or as a file (txt, md, pdf,
docx). When the index is empty or unreachable, curated fallback courses
are returned instead of an error.`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVarP(&recommendGoal, "goal", "g", "", "career goal (required)")
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "", "profile file (txt, md, pdf, docx)")
	recommendCmd.Flags().StringVarP(&recommendText, "text", "t", "", "profile text")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "output results as JSON")
	_ = recommendCmd.MarkFlagRequired("goal")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	if recommendService == nil {
		return errors.New("recommend service not configured")
	}

	ctx := context.Background()

	profileText, err := resolveProfileText()
	if err != nil {
		return err
	}

	var analysis *domain.ProfileAnalysis
	if strings.TrimSpace(profileText) != "" && profileService != nil {
		profile, err := profileService.Normalize(ctx, profileText)
		if err != nil {
			return fmt.Errorf("profile normalisation failed: %w", err)
		}
		a := profile.Analysis()
		analysis = &a
	}

	recommendation := recommendService.RecommendCourses(ctx, profileText, recommendGoal, analysis)

	if recommendJSON {
		return outputRecommendationJSON(cmd, recommendation)
	}
	return outputRecommendationTable(cmd, recommendation)
}

// resolveProfileText picks the profile text from --text or --profile.
// Both empty is allowed; recommendation then runs on the goal alone.
func resolveProfileText() (string, error) {
	if recommendText != "" {
		return recommendText, nil
	}
	if recommendProfile == "" {
		return "", nil
	}

	text, err := profileparse.ExtractText(recommendProfile)
	if err != nil {
		return "", fmt.Errorf("reading profile: %w", err)
	}
	return text, nil
}

func outputRecommendationJSON(cmd *cobra.Command, rec domain.Recommendation) error {
	data, err := json.MarshalIndent(rec.Courses, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recommendation: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRecommendationTable(cmd *cobra.Command, rec domain.Recommendation) error {
	if len(rec.Courses) == 0 {
		cmd.Println("No courses found.")
		return nil
	}

	cmd.Println("Recommended courses:")
	cmd.Println()
	for i, course := range rec.Courses {
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, course.Title, course.Similarity)
		cmd.Printf("      %s | %s | %.1f | %s\n",
			course.Instructor, course.Level, course.Rating, course.Duration)
		if course.Source == domain.SourceFallback {
			cmd.Println("      (fallback suggestion)")
		}
		cmd.Println()
	}
	return nil
}
