// Package services implements the application core: corpus ingestion,
// course retrieval and ranking, profile normalisation, and quiz
// generation.
package services
