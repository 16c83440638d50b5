package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
crono:
  api_key: "key"
  api_secret: "secret"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "crono-connector", cfg.App.Name)
	assert.Equal(t, DefaultBaseURL, cfg.Crono.BaseURL)
	assert.Equal(t, 1, cfg.Crono.APIVersion)
	assert.Equal(t, 30000, cfg.Crono.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, ":9090", cfg.Metrics.Address)
	assert.False(t, cfg.Runner.ContinueOnFail)
}

func TestLoadFromFile_ExplicitValues(t *testing.T) {
	path := writeConfig(t, `
crono:
  base_url: "https://staging.crono.one"
  api_key: "key"
  api_secret: "secret"
  api_version: 2
  timeout: 5000
runner:
  continue_on_fail: true
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "https://staging.crono.one", cfg.Crono.BaseURL)
	assert.Equal(t, 2, cfg.Crono.APIVersion)
	assert.Equal(t, 5000, cfg.Crono.Timeout)
	assert.True(t, cfg.Runner.ContinueOnFail)
}

func TestLoadFromFile_EnvOverride(t *testing.T) {
	t.Setenv("CRONO_API_KEY", "env-key")
	t.Setenv("CRONO_API_SECRET", "env-secret")

	path := writeConfig(t, `
crono:
  api_key: "${CRONO_API_KEY}"
  api_secret: "${CRONO_API_SECRET}"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Crono.APIKey)
	assert.Equal(t, "env-secret", cfg.Crono.APISecret)
}

func TestLoadFromFile_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing api key",
			content: "crono:\n  api_secret: \"secret\"\n",
			wantErr: "api_key",
		},
		{
			name:    "missing api secret",
			content: "crono:\n  api_key: \"key\"\n",
			wantErr: "api_secret",
		},
		{
			name:    "negative timeout",
			content: "crono:\n  api_key: \"key\"\n  api_secret: \"secret\"\n  timeout: -1\n",
			wantErr: "timeout",
		},
		{
			name:    "negative api version",
			content: "crono:\n  api_key: \"key\"\n  api_secret: \"secret\"\n  api_version: -1\n",
			wantErr: "api_version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := LoadFromFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 30*time.Second, GetDuration(30000))
	assert.Equal(t, time.Duration(0), GetDuration(0))
}
