package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/coursepilot/coursepilot-cli/internal/core/domain"
	"github.com/coursepilot/coursepilot-cli/internal/core/ports/driven"
	"github.com/coursepilot/coursepilot-cli/internal/logger"
)

// collectionPattern restricts collection names to identifier-safe
// characters, since the name is interpolated into table DDL.
var collectionPattern = regexp.MustCompile(`[^A-Za-z0-9_]`)

// tokenPattern splits query text into MATCH-safe tokens.
var tokenPattern = regexp.MustCompile(`[A-Za-z0-9_]+`)

// Index is an FTS5-backed course index. One Index instance corresponds
// to one collection (a pair of tables) inside the database file.
type Index struct {
	db         *sql.DB
	path       string
	collection string
}

var _ driven.CourseIndex = (*Index)(nil)

// NewIndex opens (or creates) the index database at the given data
// directory. If dataDir is empty, defaults to ~/.coursepilot/data.
// The collection names the table pair; invalid characters are stripped.
func NewIndex(dataDir, collection string) (*Index, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".coursepilot", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	collection = collectionPattern.ReplaceAllString(collection, "")
	if collection == "" {
		collection = "courses"
	}

	dbPath := filepath.Join(dataDir, "courses.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	logger.Debug("Course index opened at %s (collection %s)", dbPath, collection)

	return &Index{
		db:         db,
		path:       dbPath,
		collection: collection,
	}, nil
}

// Close closes the database connection.
func (i *Index) Close() error {
	return i.db.Close()
}

// Path returns the database file path.
func (i *Index) Path() string {
	return i.path
}

// Reset drops and recreates the collection tables, discarding all
// stored documents.
func (i *Index) Reset(ctx context.Context) error {
	statements := []string{
		fmt.Sprintf(`DROP TABLE IF EXISTS %s_fts`, i.collection),
		fmt.Sprintf(`DROP TABLE IF EXISTS %s`, i.collection),
		fmt.Sprintf(`
			CREATE TABLE %s (
				id TEXT PRIMARY KEY,
				document TEXT NOT NULL,
				metadata TEXT NOT NULL DEFAULT '{}'
			)
		`, i.collection),
		fmt.Sprintf(`
			CREATE VIRTUAL TABLE %s_fts USING fts5(
				id UNINDEXED,
				document
			)
		`, i.collection),
	}

	for _, stmt := range statements {
		if _, err := i.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("resetting collection %s: %w", i.collection, err)
		}
	}

	logger.Debug("Collection %s reset", i.collection)
	return nil
}

// Add stores a batch of documents. Both tables are written inside one
// transaction so the search rows never drift from the document rows.
func (i *Index) Add(ctx context.Context, docs []domain.IndexedDocument) error {
	if len(docs) == 0 {
		return nil
	}

	tx, err := i.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	docStmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, document, metadata)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			document = excluded.document,
			metadata = excluded.metadata
	`, i.collection))
	if err != nil {
		return fmt.Errorf("preparing document statement: %w", err)
	}
	defer docStmt.Close()

	ftsDelStmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
		DELETE FROM %s_fts WHERE id = ?
	`, i.collection))
	if err != nil {
		return fmt.Errorf("preparing search delete statement: %w", err)
	}
	defer ftsDelStmt.Close()

	ftsStmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
		INSERT INTO %s_fts (id, document) VALUES (?, ?)
	`, i.collection))
	if err != nil {
		return fmt.Errorf("preparing search statement: %w", err)
	}
	defer ftsStmt.Close()

	for _, doc := range docs {
		metadataJSON, err := json.Marshal(doc.Metadata)
		if err != nil {
			return fmt.Errorf("marshalling metadata: %w", err)
		}

		if _, err := docStmt.ExecContext(ctx, doc.ID, doc.DocumentText, string(metadataJSON)); err != nil {
			return fmt.Errorf("storing document %s: %w", doc.ID, err)
		}
		// Replace any stale search row so re-added IDs stay unique.
		if _, err := ftsDelStmt.ExecContext(ctx, doc.ID); err != nil {
			return fmt.Errorf("clearing search row %s: %w", doc.ID, err)
		}
		if _, err := ftsStmt.ExecContext(ctx, doc.ID, doc.DocumentText); err != nil {
			return fmt.Errorf("indexing document %s: %w", doc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Query runs a ranked full-text search. The query text is reduced to
// OR-joined quoted tokens so arbitrary user text cannot break the MATCH
// syntax. A collection that was never built yields no hits rather than
// an error.
func (i *Index) Query(ctx context.Context, text string, limit int) ([]driven.CourseHit, error) {
	if limit < 1 {
		return nil, nil
	}

	match := matchExpression(text)
	if match == "" {
		return nil, nil
	}

	rows, err := i.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT c.id, c.document, c.metadata, bm25(%s_fts) AS rank
		FROM %s_fts
		JOIN %s c ON c.id = %s_fts.id
		WHERE %s_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, i.collection, i.collection, i.collection, i.collection, i.collection), match, limit)
	if err != nil {
		if isMissingTable(err) {
			logger.Warn("Collection %s not built yet", i.collection)
			return nil, nil
		}
		return nil, fmt.Errorf("querying collection %s: %v: %w", i.collection, err, domain.ErrIndexUnavailable)
	}
	defer rows.Close()

	var hits []driven.CourseHit //nolint:prealloc // size unknown from query
	for rows.Next() {
		var doc domain.IndexedDocument
		var metadataJSON string
		var rank float64
		if err := rows.Scan(&doc.ID, &doc.DocumentText, &metadataJSON, &rank); err != nil {
			return nil, fmt.Errorf("scanning hit: %w", err)
		}

		if err := json.Unmarshal([]byte(metadataJSON), &doc.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshaling metadata: %w", err)
		}

		hits = append(hits, driven.CourseHit{
			Document: doc,
			Distance: distanceFromRank(rank),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating hits: %w", err)
	}

	return hits, nil
}

// Count returns the number of stored documents. A collection that was
// never built counts as zero.
func (i *Index) Count(ctx context.Context) (int, error) {
	var count int
	err := i.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM %s", i.collection)).Scan(&count)
	if err != nil {
		if isMissingTable(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("counting documents: %v: %w", err, domain.ErrIndexUnavailable)
	}
	return count, nil
}

// matchExpression converts free text into an FTS5 MATCH expression of
// quoted, OR-joined tokens.
func matchExpression(text string) string {
	tokens := tokenPattern.FindAllString(text, -1)
	if len(tokens) == 0 {
		return ""
	}

	quoted := make([]string, 0, len(tokens))
	for _, token := range tokens {
		quoted = append(quoted, `"`+strings.ToLower(token)+`"`)
	}
	return strings.Join(quoted, " OR ")
}

// distanceFromRank converts a bm25 rank into a distance in (0,1).
// bm25 reports better matches as more negative values, so the mapping
// keeps smaller distances for better matches.
func distanceFromRank(rank float64) float64 {
	score := -rank
	if score < 0 {
		score = 0
	}
	return 1 / (1 + score)
}

// isMissingTable reports whether the error indicates the collection
// tables do not exist yet.
func isMissingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}
