package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursepilot/coursepilot-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *ProfileStore {
	t.Helper()
	store, err := NewProfileStore(filepath.Join(t.TempDir(), "profiles.json"))
	require.NoError(t, err)
	return store
}

func TestProfileStore_SaveGeneratesID(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	saved, err := store.Save(ctx, domain.Profile{Name: "Ada"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ProfileID)
	assert.NotContains(t, saved.ProfileID, "-")

	loaded, err := store.Get(ctx, saved.ProfileID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", loaded.Name)
}

func TestProfileStore_SaveReplacesByID(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	saved, err := store.Save(ctx, domain.Profile{Name: "Ada", CareerGoal: "data engineer"})
	require.NoError(t, err)

	saved.CareerGoal = "ml engineer"
	_, err = store.Save(ctx, saved)
	require.NoError(t, err)

	profiles, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "ml engineer", profiles[0].CareerGoal)
}

func TestProfileStore_GetMissing(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfileStore_ListEmpty(t *testing.T) {
	store := newTestStore(t)
	profiles, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestProfileStore_LegacySingleObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	legacy := `{"ProfileId": "p-1", "Name": "Ada"}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0600))

	store, err := NewProfileStore(path)
	require.NoError(t, err)

	profiles, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "p-1", profiles[0].ProfileID)
}
