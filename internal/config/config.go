package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is read once at startup and injected everywhere; nothing mutates it
// afterwards.
type Config struct {
	Port           string   `env:"PORT" env-default:"8000"`
	LogLevel       string   `env:"LOG_LEVEL" env-default:"info"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS"`

	GeminiAPIKey       string `env:"GEMINI_API_KEY"`
	TranscriptionModel string `env:"GEMINI_TRANSCRIPTION_MODEL" env-default:"gemini-2.5-flash"`
	SummaryModel       string `env:"GEMINI_SUMMARY_MODEL" env-default:"gemini-2.5-pro"`

	// Google Drive integration. Optional at boot: the drive endpoint answers
	// 500 until all three pieces are present.
	ServiceAccountJSON string `env:"GOOGLE_SERVICE_ACCOUNT_JSON"`
	AudioFolderID      string `env:"DRIVE_AUDIO_FOLDER_ID"`
	ReportsFolderID    string `env:"DRIVE_REPORTS_FOLDER_ID"`

	// Optional GCS mirror for generated reports.
	ReportsBucket string `env:"GCS_REPORTS_BUCKET"`
}

// Load reads the environment into a Config. A local .env file is consulted
// only outside hosted execution; Render sets RENDER for us.
func Load() (*Config, error) {
	if os.Getenv("RENDER") == "" {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return errors.New("GEMINI_API_KEY environment variable is not set")
	}
	return nil
}

// DriveConfigured reports whether the Drive archive workflow can run.
func (c *Config) DriveConfigured() bool {
	return c.ServiceAccountJSON != "" && c.AudioFolderID != "" && c.ReportsFolderID != ""
}
