package corpus

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/coursepilot/coursepilot-cli/internal/logger"
)

// Column headers expected in the corpus CSV. Missing columns yield
// empty field values rather than errors.
const (
	colTitle        = "Title"
	colDescription  = "Detailed Description"
	colInstructor   = "Instructor"
	colLevel        = "Level"
	colRating       = "Rating"
	colDuration     = "Duration"
	colLink         = "Link"
	colPrice        = "Current Price"
	colOutcomes     = "What You'll Learn"
	colRequirements = "Requirements"
	colAudience     = "Target Audience"
)

// LoadCSV reads the corpus file into raw rows. The file bytes are
// decoded as UTF-8, retrying with Latin-1 and then Windows-1252 before
// failing the whole ingestion. Individual malformed rows are logged
// with their index and skipped.
func LoadCSV(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus file: %w", err)
	}

	decoded, err := decodeCorpus(data)
	if err != nil {
		return nil, fmt.Errorf("decoding corpus file: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading corpus header: %w", err)
	}
	columns := indexColumns(header)

	var rows []Row
	for rowIdx := 0; ; rowIdx++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Error("Skipping corpus row %d: %v", rowIdx, err)
			continue
		}

		rows = append(rows, Row{
			Title:        field(fields, columns, colTitle),
			Description:  field(fields, columns, colDescription),
			Instructor:   field(fields, columns, colInstructor),
			Level:        field(fields, columns, colLevel),
			Rating:       field(fields, columns, colRating),
			Duration:     field(fields, columns, colDuration),
			Link:         field(fields, columns, colLink),
			Price:        field(fields, columns, colPrice),
			Outcomes:     field(fields, columns, colOutcomes),
			Requirements: field(fields, columns, colRequirements),
			Audience:     field(fields, columns, colAudience),
		})
	}

	logger.Info("Loaded %d corpus rows from %s", len(rows), path)
	return rows, nil
}

// decodeCorpus converts raw file bytes to UTF-8, trying UTF-8, Latin-1,
// and Windows-1252 in that order.
func decodeCorpus(data []byte) ([]byte, error) {
	if utf8.Valid(data) {
		return data, nil
	}

	logger.Warn("Corpus file is not valid UTF-8, retrying with Latin-1")
	if decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data); err == nil {
		return decoded, nil
	}

	logger.Warn("Latin-1 decoding failed, retrying with Windows-1252")
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("no supported encoding: %w", err)
	}
	return decoded, nil
}

// indexColumns maps header names to their positions. Header matching
// trims whitespace but is otherwise exact.
func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	return columns
}

// field returns the named column value for a row, or "" when the column
// is absent or the row is short.
func field(fields []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(fields) {
		return ""
	}
	return fields[idx]
}
