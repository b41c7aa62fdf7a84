package driven

import (
	"context"

	"github.com/coursepilot/coursepilot-cli/internal/core/domain"
)

// CourseIndex is a persistent text-searchable store of course documents.
// It is rebuilt from scratch on each ingestion run and serves concurrent
// readers at request time.
type CourseIndex interface {
	// Add appends a batch of documents during a build pass.
	Add(ctx context.Context, docs []domain.IndexedDocument) error

	// Query performs a text search and returns up to limit hits ordered
	// by ascending distance. An unbuilt index returns no hits, not an
	// error.
	Query(ctx context.Context, text string, limit int) ([]CourseHit, error)

	// Count returns the number of stored documents, 0 when the index
	// has not been built.
	Count(ctx context.Context) (int, error)

	// Reset drops any existing contents and prepares the index for a
	// fresh build pass. The index never mixes two corpus generations.
	Reset(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// CourseHit is a single query result.
type CourseHit struct {
	// Document is the matched indexed document.
	Document domain.IndexedDocument

	// Distance is the store-native dissimilarity score; smaller means
	// more similar. Callers must not assume a scale beyond
	// monotonicity and should clamp derived similarities into [0,1].
	Distance float64
}
