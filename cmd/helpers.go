package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/ziadkadry99/moviemood/internal/api"
	"github.com/ziadkadry99/moviemood/internal/config"
	"github.com/ziadkadry99/moviemood/internal/db"
	"github.com/ziadkadry99/moviemood/internal/logging"
	"github.com/ziadkadry99/moviemood/internal/page"
	"github.com/ziadkadry99/moviemood/internal/speech"
	"github.com/ziadkadry99/moviemood/internal/theme"
	"github.com/ziadkadry99/moviemood/internal/ui"
)

// loadConfig loads and validates the config and sets up logging, providing a
// user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `moviemood init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	if logCloser == nil {
		closer, err := logging.Setup(cfg.Log, verbose)
		if err != nil {
			return nil, fmt.Errorf("setting up logging: %w", err)
		}
		logCloser = closer
	}
	return cfg, nil
}

// loadClient loads the config and builds an API client from it.
func loadClient() (*config.Config, *api.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	return cfg, api.NewClient(cfg), nil
}

// openPrefs opens the local preferences database.
func openPrefs(cfg *config.Config) (*db.DB, *theme.Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating data directory: %w", err)
	}
	database, err := db.Open(cfg.DBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return database, theme.NewStore(database), nil
}

// createSpeechFromConfig returns the OpenAI-backed provider when speech is
// enabled and an API key is present, and an unavailable provider otherwise.
func createSpeechFromConfig(cfg *config.Config) speech.Provider {
	return speech.NewOpenAIProvider(cfg.Speech, os.Getenv(config.OpenAIKeyEnvVar), afero.NewOsFs())
}

// pageDeps collects the shared collaborators for a page.
func pageDeps(cfg *config.Config, client *api.Client, u ui.UI, prefs theme.Preferences) page.Deps {
	return page.Deps{
		Client:     client,
		UI:         u,
		Speech:     createSpeechFromConfig(cfg),
		Prefs:      prefs,
		PageSize:   cfg.PageSize,
		Breakpoint: cfg.Breakpoint,
		Hotword:    cfg.Speech.Hotword,
	}
}
