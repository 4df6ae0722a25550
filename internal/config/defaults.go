package config

import "path/filepath"

const (
	DefaultLanguage   = "en-US"
	DefaultHotword    = "okay buddy"
	DefaultPageSize   = 20
	DefaultBreakpoint = 768
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	dataDir := ".moviemood"
	return &Config{
		BaseURL:           "http://localhost:5000",
		Language:          DefaultLanguage,
		PageSize:          DefaultPageSize,
		TimeoutSeconds:    15,
		Retries:           3,
		RequestsPerSecond: 5,
		DataDir:           dataDir,
		Page: PageInfo{
			LoginURL: "/login",
		},
		Speech: Speech{
			Enabled:  false,
			Hotword:  DefaultHotword,
			STTModel: "whisper-1",
			TTSModel: "tts-1",
			Voice:    "alloy",
			ClipDir:  filepath.Join(dataDir, "clips"),
			OutDir:   filepath.Join(dataDir, "speech"),
		},
		Breakpoint: DefaultBreakpoint,
		Log: LogConfig{
			File:       "",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
			Compress:   true,
		},
	}
}

// DBPath returns the location of the local preferences database.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "moviemood.db")
}
