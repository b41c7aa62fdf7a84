package services

import (
	"context"
	"fmt"

	"github.com/coursepilot/coursepilot-cli/internal/core/domain"
	"github.com/coursepilot/coursepilot-cli/internal/core/ports/driven"
	"github.com/coursepilot/coursepilot-cli/internal/core/ports/driving"
	"github.com/coursepilot/coursepilot-cli/internal/corpus"
	"github.com/coursepilot/coursepilot-cli/internal/logger"
)

// Ensure Ingestor implements the interface.
var _ driving.IngestService = (*Ingestor)(nil)

// ingestBatchSize bounds memory during a build pass.
const ingestBatchSize = 100

// Ingestor builds the course index from a corpus file. Each run fully
// replaces the prior index contents; the index never mixes two corpus
// generations.
type Ingestor struct {
	index driven.CourseIndex
}

// NewIngestor creates an ingestor writing to the given index.
func NewIngestor(index driven.CourseIndex) *Ingestor {
	return &Ingestor{index: index}
}

// BuildIndex loads the corpus, resets the index, and stores one
// document per usable row in batches. Returns the number of documents
// stored.
func (s *Ingestor) BuildIndex(ctx context.Context, corpusPath string) (int, error) {
	logger.Section("Corpus Ingestion")

	rows, err := corpus.LoadCSV(corpusPath)
	if err != nil {
		return 0, fmt.Errorf("loading corpus: %w", err)
	}

	if err := s.index.Reset(ctx); err != nil {
		return 0, fmt.Errorf("resetting index: %w", err)
	}

	batch := make([]domain.IndexedDocument, 0, ingestBatchSize)
	stored := 0

	for i, row := range rows {
		record, doc := corpus.Build(row, i)
		if record.Title == "" {
			logger.Error("Skipping corpus row %d: no usable title", i)
			continue
		}

		batch = append(batch, doc)
		if len(batch) >= ingestBatchSize {
			if err := s.index.Add(ctx, batch); err != nil {
				return stored, fmt.Errorf("storing batch: %w", err)
			}
			stored += len(batch)
			logger.Debug("Stored batch of %d documents (%d total)", len(batch), stored)
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := s.index.Add(ctx, batch); err != nil {
			return stored, fmt.Errorf("storing final batch: %w", err)
		}
		stored += len(batch)
	}

	total, err := s.index.Count(ctx)
	if err != nil {
		logger.Warn("Counting stored documents: %v", err)
		total = stored
	}
	logger.Info("Ingestion complete: %d documents stored, collection holds %d", stored, total)
	return stored, nil
}
