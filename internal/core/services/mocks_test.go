package services

import (
	"context"

	"github.com/coursepilot/coursepilot-cli/internal/core/domain"
	"github.com/coursepilot/coursepilot-cli/internal/core/ports/driven"
)

// mockIndex is a configurable driven.CourseIndex for tests.
type mockIndex struct {
	addFunc   func(ctx context.Context, docs []domain.IndexedDocument) error
	queryFunc func(ctx context.Context, text string, limit int) ([]driven.CourseHit, error)
	resetFunc func(ctx context.Context) error
	countFunc func(ctx context.Context) (int, error)

	added      [][]domain.IndexedDocument
	resetCalls int
	countCalls int
	lastQuery  string
	lastLimit  int
}

var _ driven.CourseIndex = (*mockIndex)(nil)

func (m *mockIndex) Add(ctx context.Context, docs []domain.IndexedDocument) error {
	copied := make([]domain.IndexedDocument, len(docs))
	copy(copied, docs)
	m.added = append(m.added, copied)
	if m.addFunc != nil {
		return m.addFunc(ctx, docs)
	}
	return nil
}

func (m *mockIndex) Query(ctx context.Context, text string, limit int) ([]driven.CourseHit, error) {
	m.lastQuery = text
	m.lastLimit = limit
	if m.queryFunc != nil {
		return m.queryFunc(ctx, text, limit)
	}
	return nil, nil
}

func (m *mockIndex) Count(ctx context.Context) (int, error) {
	m.countCalls++
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	total := 0
	for _, batch := range m.added {
		total += len(batch)
	}
	return total, nil
}

func (m *mockIndex) Reset(ctx context.Context) error {
	m.resetCalls++
	if m.resetFunc != nil {
		return m.resetFunc(ctx)
	}
	return nil
}

func (m *mockIndex) Close() error { return nil }

// mockLLM is a configurable driven.LLMService for tests.
type mockLLM struct {
	generateFunc func(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error)
	lastPrompt   string
	lastOpts     driven.GenerateOptions
}

var _ driven.LLMService = (*mockLLM)(nil)

func (m *mockLLM) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	m.lastPrompt = prompt
	m.lastOpts = opts
	if m.generateFunc != nil {
		return m.generateFunc(ctx, prompt, opts)
	}
	return "", nil
}

func (m *mockLLM) ModelName() string { return "mock-model" }

func (m *mockLLM) Close() error { return nil }
