package driving

import (
	"context"

	"github.com/coursepilot/coursepilot-cli/internal/core/domain"
)

// RecommendService produces course recommendations for a learner.
type RecommendService interface {
	// RecommendCourses is a total operation: it always returns at
	// least one course, substituting fallback stubs when retrieval
	// yields nothing or fails. A nil analysis is replaced by a minimal
	// default.
	RecommendCourses(ctx context.Context, profileText, careerGoal string, analysis *domain.ProfileAnalysis) domain.Recommendation
}

// IngestService builds the course index from a corpus file.
type IngestService interface {
	// BuildIndex fully replaces prior index contents and returns the
	// number of documents stored. Malformed rows are skipped, not
	// fatal; only an unreadable source file fails the ingestion.
	BuildIndex(ctx context.Context, corpusPath string) (int, error)
}
