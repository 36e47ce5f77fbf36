package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/luminaai/lumina/internal/file"
)

var defaultConfig = Config{
	APIHost:               "http://localhost:8000",
	RequestTimeoutSeconds: 60,
	DefaultModel:          "gemini",
	CredentialsPath:       "~/.config/lumina/credentials.json",
	CacheDirectory:        "~/.config/lumina",
}

// Config holds configuration for the lumina tool.
type Config struct {
	// Base URL of the Lumina backend.
	APIHost string `json:"api_host"`
	// Timeout applied to every backend request, in seconds.
	RequestTimeoutSeconds int `json:"request_timeout"`
	// The model used when none is selected ("gemini" or "openai").
	DefaultModel string `json:"default_model"`
	// Where the bearer credential is persisted after login.
	CredentialsPath string `json:"credentials_path"`
	// The directory where we store the local conversation cache.
	CacheDirectory string `json:"cache_directory"`
}

// RequestTimeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// Parse a configuration file.
func Parse(path string) (*Config, error) {
	path, err := file.ExpandPath(path)
	if err != nil {
		return nil, errors.Wrap(err, "expanding path")
	}

	if err := initializeIfNotPresent(path); err != nil {
		return nil, errors.Wrap(err, "initializing configuration")
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	config := &Config{}
	if err = json.Unmarshal(bytes, config); err != nil {
		return nil, errors.Wrap(err, "unmarshaling into config")
	}

	expandedCredentialsPath, err := file.ExpandPath(config.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "expanding credentials path")
	}
	config.CredentialsPath = expandedCredentialsPath

	expandedCacheDirectory, err := file.ExpandPath(config.CacheDirectory)
	if err != nil {
		return nil, errors.Wrap(err, "expanding cache directory path")
	}
	config.CacheDirectory = expandedCacheDirectory
	return config, nil
}

// save a configuration file.
func (c *Config) save(path string) error {
	bytes, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	err = os.WriteFile(path, bytes, 0644)
	if err != nil {
		return errors.Wrap(err, "writing file")
	}

	return nil
}

// initializeIfNotPresent initializes a config if it does not exist.
func initializeIfNotPresent(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil
	}

	// Create the directories.
	dir, _ := filepath.Split(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "creating folders")
	}

	if err := defaultConfig.save(path); err != nil {
		return errors.Wrap(err, "saving default config")
	}
	return nil
}
