// Package cli provides the cobra command tree driving the application
// services.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/coursepilot/coursepilot-cli/internal/core/ports/driven"
	"github.com/coursepilot/coursepilot-cli/internal/core/ports/driving"
	"github.com/coursepilot/coursepilot-cli/internal/logger"
)

// version is set by Execute before the command tree runs.
var version = "dev"

// verbose enables debug logging.
var verbose bool

// Services configured by the composition root.
var (
	recommendService driving.RecommendService
	ingestService    driving.IngestService
	profileService   driving.ProfileService
	quizService      driving.QuizService
	profileStore     driven.ProfileStore
)

var rootCmd = &cobra.Command{
	Use:   "coursepilot",
	Short: "Course recommendations from your learner profile",
	Long: `CoursePilot builds a searchable index over a course corpus and
recommends courses matched to a learner profile and career goal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Services bundles everything the command tree needs.
type Services struct {
	Recommend    driving.RecommendService
	Ingest       driving.IngestService
	Profile      driving.ProfileService
	Quiz         driving.QuizService
	ProfileStore driven.ProfileStore
}

// Configure injects the application services. Must be called before
// Execute.
func Configure(services Services) {
	recommendService = services.Recommend
	ingestService = services.Ingest
	profileService = services.Profile
	quizService = services.Quiz
	profileStore = services.ProfileStore
}

// Execute runs the command tree.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}
