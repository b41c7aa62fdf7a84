// Command coursepilot is the course recommendation CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/coursepilot/coursepilot-cli/internal/adapters/driven/config/file"
	"github.com/coursepilot/coursepilot-cli/internal/adapters/driven/index/sqlite"
	"github.com/coursepilot/coursepilot-cli/internal/adapters/driven/llm/openai"
	storagefile "github.com/coursepilot/coursepilot-cli/internal/adapters/driven/storage/file"
	"github.com/coursepilot/coursepilot-cli/internal/adapters/driving/cli"
	"github.com/coursepilot/coursepilot-cli/internal/core/ports/driven"
	"github.com/coursepilot/coursepilot-cli/internal/core/services"
	"github.com/coursepilot/coursepilot-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env file is fine; environment variables still apply.
	_ = godotenv.Load()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config: %w", err)
	}
	settings := file.ResolveSettings(configStore)

	index, err := sqlite.NewIndex(settings.IndexDir, settings.Collection)
	if err != nil {
		return fmt.Errorf("opening course index: %w", err)
	}
	defer index.Close()

	if count, err := index.Count(context.Background()); err == nil {
		logger.Debug("Course index ready with %d documents", count)
	}

	profileStore, err := storagefile.NewProfileStore(settings.ProfilePath)
	if err != nil {
		return fmt.Errorf("opening profile store: %w", err)
	}

	var llm driven.LLMService
	if settings.APIKey != "" {
		llm, err = openai.NewLLMService(openai.LLMConfig{
			APIKey:  settings.APIKey,
			BaseURL: settings.LLMBaseURL,
			Model:   settings.LLMModel,
		})
		if err != nil {
			return fmt.Errorf("initialising LLM: %w", err)
		}
		defer llm.Close()
	} else {
		logger.Warn("OPENAI_API_KEY not set, LLM features degraded to fallbacks")
	}

	cli.Configure(cli.Services{
		Recommend:    services.NewRecommender(index),
		Ingest:       services.NewIngestor(index),
		Profile:      services.NewProfileNormalizer(llm, profileStore),
		Quiz:         services.NewQuizGenerator(llm),
		ProfileStore: profileStore,
	})

	return cli.Execute(version)
}
