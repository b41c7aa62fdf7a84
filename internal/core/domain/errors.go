package domain

import "errors"

// Common errors returned by stores and services.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrIndexUnavailable indicates the course index has not been built
	// or cannot be opened. Retrieval degrades to fallback courses.
	ErrIndexUnavailable = errors.New("course index unavailable")

	// ErrInvalidInput indicates a malformed argument.
	ErrInvalidInput = errors.New("invalid input")
)
