package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// speechLanguages are the recognition locales offered by the wizard.
var speechLanguages = []string{"en-US", "en-GB", "es-ES", "fr-FR", "de-DE", "hi-IN"}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to moviemood! Let's point it at your review server.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Backend URL.
	basePrompt := promptui.Prompt{
		Label:    "Backend base URL",
		Default:  cfg.BaseURL,
		Validate: validateURL,
	}
	baseURL, err := basePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")

	// 2. Speech language.
	langPrompt := promptui.Select{
		Label: "Speech recognition language",
		Items: speechLanguages,
	}
	_, lang, err := langPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("language selection: %w", err)
	}
	cfg.Language = lang

	// 3. Login state.
	loginPrompt := promptui.Select{
		Label: "Are you logged in on the server?",
		Items: []string{"no", "yes"},
	}
	loginIdx, _, err := loginPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("login selection: %w", err)
	}
	cfg.Page.LoggedIn = loginIdx == 1

	// 4. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Local data directory",
		Default: cfg.DataDir,
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	cfg.DataDir = strings.TrimSpace(dataDir)

	// 5. Speech.
	speechPrompt := promptui.Select{
		Label: "Enable voice input/output (uses OpenAI audio APIs)",
		Items: []string{"no", "yes"},
	}
	speechIdx, _, err := speechPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("speech selection: %w", err)
	}
	cfg.Speech.Enabled = speechIdx == 1
	if cfg.Speech.Enabled && os.Getenv(OpenAIKeyEnvVar) == "" {
		fmt.Printf("\nNote: Set %s in your environment to use voice features.\n", OpenAIKeyEnvVar)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validateURL(input string) error {
	u, err := url.Parse(strings.TrimSpace(input))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("enter an absolute URL such as http://localhost:5000")
	}
	return nil
}
