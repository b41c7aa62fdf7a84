package file

import (
	"os"

	"github.com/coursepilot/coursepilot-cli/internal/core/ports/driven"
)

// Environment variables recognised at startup. Environment values take
// precedence over the config file.
const (
	EnvIndexPath  = "COURSEPILOT_INDEX_PATH"
	EnvCollection = "COURSEPILOT_COLLECTION"
	EnvAPIKey     = "OPENAI_API_KEY"
)

// Config file keys.
const (
	KeyIndexPath   = "index.path"
	KeyCollection  = "index.collection"
	KeyProfilePath = "profiles.path"
	KeyLLMModel    = "llm.model"
	KeyLLMBaseURL  = "llm.base_url"
)

// DefaultCollection is the collection used when nothing is configured.
const DefaultCollection = "udemy_courses"

// Settings are the resolved effective settings for one process run.
type Settings struct {
	// IndexDir is the data directory of the course index. Empty means
	// the adapter default (~/.coursepilot/data).
	IndexDir string

	// Collection names the indexed course collection.
	Collection string

	// ProfilePath is the profile store file. Empty means the adapter
	// default.
	ProfilePath string

	// APIKey is the LLM API key. Empty disables the LLM.
	APIKey string

	// LLMModel overrides the LLM model name when set.
	LLMModel string

	// LLMBaseURL overrides the LLM API base URL when set.
	LLMBaseURL string
}

// ResolveSettings merges environment variables over the config store
// over built-in defaults.
func ResolveSettings(store driven.ConfigStore) Settings {
	settings := Settings{
		IndexDir:    store.GetString(KeyIndexPath),
		Collection:  store.GetString(KeyCollection),
		ProfilePath: store.GetString(KeyProfilePath),
		APIKey:      os.Getenv(EnvAPIKey),
		LLMModel:    store.GetString(KeyLLMModel),
		LLMBaseURL:  store.GetString(KeyLLMBaseURL),
	}

	if env := os.Getenv(EnvIndexPath); env != "" {
		settings.IndexDir = env
	}
	if env := os.Getenv(EnvCollection); env != "" {
		settings.Collection = env
	}
	if settings.Collection == "" {
		settings.Collection = DefaultCollection
	}

	return settings
}
