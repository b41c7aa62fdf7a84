// Package corpus turns raw course rows into normalised course records
// and searchable index documents. Cleaning, list-field parsing, and
// document assembly are deterministic so that repeated ingestion runs
// produce identical documents.
package corpus
