package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RENDER", "true") // keep godotenv away from the test environment
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "gemini-2.5-flash", cfg.TranscriptionModel)
	assert.Equal(t, "gemini-2.5-pro", cfg.SummaryModel)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("RENDER", "true")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoadAllowedOrigins(t *testing.T) {
	t.Setenv("RENDER", "true")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("ALLOWED_ORIGINS", "https://mjtranscripciones.com,http://localhost:5173")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://mjtranscripciones.com", "http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestDriveConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{
			name: "all pieces present",
			cfg: Config{
				ServiceAccountJSON: `{"type":"service_account"}`,
				AudioFolderID:      "folder-a",
				ReportsFolderID:    "folder-b",
			},
			want: true,
		},
		{
			name: "missing credentials",
			cfg: Config{
				AudioFolderID:   "folder-a",
				ReportsFolderID: "folder-b",
			},
			want: false,
		},
		{
			name: "missing audio folder",
			cfg: Config{
				ServiceAccountJSON: `{"type":"service_account"}`,
				ReportsFolderID:    "folder-b",
			},
			want: false,
		},
		{
			name: "missing reports folder",
			cfg: Config{
				ServiceAccountJSON: `{"type":"service_account"}`,
				AudioFolderID:      "folder-a",
			},
			want: false,
		},
		{
			name: "nothing configured",
			cfg:  Config{},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.DriveConfigured())
		})
	}
}
