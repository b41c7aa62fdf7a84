package driven

import (
	"context"

	"github.com/coursepilot/coursepilot-cli/internal/core/domain"
)

// ProfileStore persists normalised learner profiles.
type ProfileStore interface {
	// Save stores a profile, replacing any existing profile with the
	// same ProfileID. A missing ProfileID is generated. Returns the
	// saved profile.
	Save(ctx context.Context, profile domain.Profile) (domain.Profile, error)

	// Get retrieves a profile by ID.
	Get(ctx context.Context, id string) (*domain.Profile, error)

	// List returns all stored profiles.
	List(ctx context.Context) ([]domain.Profile, error)
}
