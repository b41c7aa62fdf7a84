// Package memory implements the course index in process memory. It
// serves tests and environments without a writable data directory;
// ranking is plain keyword overlap rather than bm25.
package memory

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/coursepilot/coursepilot-cli/internal/core/domain"
	"github.com/coursepilot/coursepilot-cli/internal/core/ports/driven"
)

var wordPattern = regexp.MustCompile(`[A-Za-z0-9_]+`)

// Index is a mutex-guarded in-memory course index.
type Index struct {
	mu   sync.RWMutex
	docs []domain.IndexedDocument
}

var _ driven.CourseIndex = (*Index)(nil)

// NewIndex creates an empty in-memory index.
func NewIndex() *Index {
	return &Index{}
}

// Add stores a batch of documents.
func (i *Index) Add(_ context.Context, docs []domain.IndexedDocument) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.docs = append(i.docs, docs...)
	return nil
}

// Query ranks stored documents by keyword overlap with the query text.
// Distance is 1 minus the fraction of query tokens found in the
// document, so full overlap gives distance 0.
func (i *Index) Query(_ context.Context, text string, limit int) ([]driven.CourseHit, error) {
	if limit < 1 {
		return nil, nil
	}

	queryTokens := tokenize(text)
	if len(queryTokens) == 0 {
		return nil, nil
	}

	i.mu.RLock()
	defer i.mu.RUnlock()

	var hits []driven.CourseHit
	for _, doc := range i.docs {
		docTokens := tokenSet(doc.DocumentText)

		matched := 0
		for _, token := range queryTokens {
			if docTokens[token] {
				matched++
			}
		}
		if matched == 0 {
			continue
		}

		score := float64(matched) / float64(len(queryTokens))
		hits = append(hits, driven.CourseHit{
			Document: doc,
			Distance: 1 - score,
		})
	}

	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Distance < hits[b].Distance
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

// Count returns the number of stored documents.
func (i *Index) Count(_ context.Context) (int, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.docs), nil
}

// Reset discards all stored documents.
func (i *Index) Reset(_ context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.docs = nil
	return nil
}

// Close is a no-op.
func (i *Index) Close() error {
	return nil
}

func tokenize(text string) []string {
	raw := wordPattern.FindAllString(strings.ToLower(text), -1)
	seen := make(map[string]bool, len(raw))
	tokens := make([]string, 0, len(raw))
	for _, token := range raw {
		if seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}
	return tokens
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		set[token] = true
	}
	return set
}
