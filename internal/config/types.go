package config

// Config is the top-level moviemood configuration, corresponding to .moviemood.yml.
type Config struct {
	BaseURL           string    `yaml:"base_url" koanf:"base_url"`
	Language          string    `yaml:"language" koanf:"language"`
	PageSize          int       `yaml:"page_size" koanf:"page_size"`
	TimeoutSeconds    int       `yaml:"timeout_seconds" koanf:"timeout_seconds"`
	Retries           int       `yaml:"retries" koanf:"retries"`
	RequestsPerSecond float64   `yaml:"requests_per_second" koanf:"requests_per_second"`
	DataDir           string    `yaml:"data_dir" koanf:"data_dir"`
	Page              PageInfo  `yaml:"page" koanf:"page"`
	Speech            Speech    `yaml:"speech" koanf:"speech"`
	Breakpoint        int       `yaml:"breakpoint" koanf:"breakpoint"`
	Log               LogConfig `yaml:"log" koanf:"log"`
}

// PageInfo carries the values the server-rendering layer injects into a page.
// They are read-only to every controller.
type PageInfo struct {
	LoggedIn   bool   `yaml:"logged_in" koanf:"logged_in"`
	LoginURL   string `yaml:"login_url" koanf:"login_url"`
	MovieID    string `yaml:"movie_id" koanf:"movie_id"`
	MovieTitle string `yaml:"movie_title" koanf:"movie_title"`
	UserAgent  string `yaml:"user_agent" koanf:"user_agent"`
}

// Speech holds recognition and synthesis settings.
type Speech struct {
	Enabled  bool   `yaml:"enabled" koanf:"enabled"`
	Hotword  string `yaml:"hotword" koanf:"hotword"`
	STTModel string `yaml:"stt_model" koanf:"stt_model"`
	TTSModel string `yaml:"tts_model" koanf:"tts_model"`
	Voice    string `yaml:"voice" koanf:"voice"`
	ClipDir  string `yaml:"clip_dir" koanf:"clip_dir"`
	OutDir   string `yaml:"out_dir" koanf:"out_dir"`
}

// LogConfig controls the optional rotating log file.
type LogConfig struct {
	File       string `yaml:"file" koanf:"file"`
	MaxSize    int    `yaml:"max_size" koanf:"max_size"`
	MaxBackups int    `yaml:"max_backups" koanf:"max_backups"`
	MaxAge     int    `yaml:"max_age" koanf:"max_age"`
	Compress   bool   `yaml:"compress" koanf:"compress"`
}
