package configuration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInitializesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	config, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", config.APIHost)
	assert.Equal(t, "gemini", config.DefaultModel)
	assert.Equal(t, 60*time.Second, config.RequestTimeout())

	// The default file was written for next time.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestParseExistingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_host": "https://api.example.com",
		"request_timeout": 5,
		"default_model": "openai",
		"credentials_path": "/tmp/lumina-credentials.json",
		"cache_directory": "/tmp/lumina-cache"
	}`), 0644))

	config, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", config.APIHost)
	assert.Equal(t, "openai", config.DefaultModel)
	assert.Equal(t, 5*time.Second, config.RequestTimeout())
	assert.Equal(t, "/tmp/lumina-credentials.json", config.CredentialsPath)
	assert.Equal(t, "/tmp/lumina-cache", config.CacheDirectory)
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Parse(path)
	require.Error(t, err)
}
