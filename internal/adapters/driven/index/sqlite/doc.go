// Package sqlite implements the course index on SQLite FTS5. Documents
// live in a plain table keyed by id; a contentless-companion FTS5 table
// provides the text search, ranked by bm25.
package sqlite
