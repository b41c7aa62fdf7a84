// Package file implements profile persistence as a JSON document on
// disk. The whole profile list is rewritten on every save; profile
// volumes are tiny so this stays simple and atomic enough.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/coursepilot/coursepilot-cli/internal/core/domain"
	"github.com/coursepilot/coursepilot-cli/internal/core/ports/driven"
)

// Ensure ProfileStore implements the interface.
var _ driven.ProfileStore = (*ProfileStore)(nil)

// ProfileStore persists profiles to a single JSON file.
type ProfileStore struct {
	mu   sync.Mutex
	path string
}

// NewProfileStore creates a profile store at the given path. If path is
// empty, defaults to ~/.coursepilot/data/profiles.json.
func NewProfileStore(path string) (*ProfileStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".coursepilot", "data", "profiles.json")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &ProfileStore{path: path}, nil
}

// Save stores a profile, replacing any existing profile with the same
// ProfileID. A missing ProfileID is generated.
func (s *ProfileStore) Save(_ context.Context, profile domain.Profile) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load()
	if err != nil {
		return domain.Profile{}, err
	}

	if strings.TrimSpace(profile.ProfileID) == "" {
		profile.ProfileID = strings.ReplaceAll(uuid.NewString(), "-", "")
	}

	replaced := false
	for i, existing := range profiles {
		if existing.ProfileID == profile.ProfileID {
			profiles[i] = profile
			replaced = true
			break
		}
	}
	if !replaced {
		profiles = append(profiles, profile)
	}

	if err := s.write(profiles); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

// Get retrieves a profile by ID.
func (s *ProfileStore) Get(_ context.Context, id string) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, profile := range profiles {
		if profile.ProfileID == id {
			return &profile, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns all stored profiles.
func (s *ProfileStore) List(_ context.Context) ([]domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// load reads the profile list. A missing file is an empty list. A file
// holding a single profile object (the legacy layout) is wrapped into a
// one-element list.
func (s *ProfileStore) load() ([]domain.Profile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading profiles: %w", err)
	}

	var profiles []domain.Profile
	if err := json.Unmarshal(data, &profiles); err == nil {
		return profiles, nil
	}

	var single domain.Profile
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("parsing profiles: %w", err)
	}
	return []domain.Profile{single}, nil
}

// write replaces the profile file contents.
func (s *ProfileStore) write(profiles []domain.Profile) error {
	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling profiles: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing profiles: %w", err)
	}
	return nil
}
