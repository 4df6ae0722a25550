package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Language != DefaultLanguage {
		t.Errorf("expected default language %q, got %q", DefaultLanguage, cfg.Language)
	}
	if cfg.PageSize != 20 {
		t.Errorf("expected default page_size 20, got %d", cfg.PageSize)
	}
	if cfg.Breakpoint != 768 {
		t.Errorf("expected default breakpoint 768, got %d", cfg.Breakpoint)
	}
	if cfg.Speech.Hotword != "okay buddy" {
		t.Errorf("expected default hotword, got %q", cfg.Speech.Hotword)
	}
	if cfg.Page.LoggedIn {
		t.Error("expected logged_in to default to false")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.moviemood.yml")

	original := DefaultConfig()
	original.BaseURL = "http://reviews.internal:8080"
	original.Language = "fr-FR"
	original.PageSize = 10
	original.Page.LoggedIn = true
	original.Page.MovieTitle = "Alien"
	original.Log.File = "logs/moviemood.log"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.BaseURL != original.BaseURL {
		t.Errorf("base_url: got %q, want %q", loaded.BaseURL, original.BaseURL)
	}
	if loaded.Language != original.Language {
		t.Errorf("language: got %q, want %q", loaded.Language, original.Language)
	}
	if loaded.PageSize != original.PageSize {
		t.Errorf("page_size: got %d, want %d", loaded.PageSize, original.PageSize)
	}
	if !loaded.Page.LoggedIn {
		t.Error("page.logged_in: expected true")
	}
	if loaded.Page.MovieTitle != "Alien" {
		t.Errorf("page.movie_title: got %q", loaded.Page.MovieTitle)
	}
	if loaded.Log.File != original.Log.File {
		t.Errorf("log.file: got %q, want %q", loaded.Log.File, original.Log.File)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.PageSize != DefaultPageSize {
		t.Errorf("expected default page size, got %d", cfg.PageSize)
	}
}

func TestLoadTrimsTrailingSlash(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")
	if err := os.WriteFile(path, []byte("base_url: http://example.com/\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BaseURL != "http://example.com" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.BaseURL)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("MOVIEMOOD_BASE_URL", "http://override:9000")
	t.Setenv("MOVIEMOOD_PAGE__LOGGED_IN", "true")
	t.Setenv("MOVIEMOOD_PAGE__MOVIE_TITLE", "Heat")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.BaseURL != "http://override:9000" {
		t.Errorf("env override failed: got %q", loaded.BaseURL)
	}
	if !loaded.Page.LoggedIn {
		t.Error("expected nested env override for page.logged_in")
	}
	if loaded.Page.MovieTitle != "Heat" {
		t.Errorf("expected movie title override, got %q", loaded.Page.MovieTitle)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base url", func(c *Config) { c.BaseURL = "" }},
		{"relative base url", func(c *Config) { c.BaseURL = "reviews/api" }},
		{"zero page size", func(c *Config) { c.PageSize = 0 }},
		{"zero timeout", func(c *Config) { c.TimeoutSeconds = 0 }},
		{"negative retries", func(c *Config) { c.Retries = -1 }},
		{"negative rate", func(c *Config) { c.RequestsPerSecond = -2 }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"zero breakpoint", func(c *Config) { c.Breakpoint = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	if err := validateURL("http://localhost:5000"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := validateURL("localhost"); err == nil {
		t.Error("expected error for host without scheme")
	}
}

func TestDBPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = "/tmp/mm"
	if got := cfg.DBPath(); got != filepath.Join("/tmp/mm", "moviemood.db") {
		t.Errorf("DBPath() = %q", got)
	}
}
