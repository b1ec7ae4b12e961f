package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"levelgen.dev/internal/generation"
)

// Config holds all application configuration
type Config struct {
	ServerAddr string
	DataPath   string
	DBPath     string
	Tuning     generation.Tuning
}

// Load reads configuration from the environment. LEVELGEN_TUNING names an
// optional YAML file overriding the generator defaults.
func Load() (*Config, error) {
	serverAddr := os.Getenv("SERVER_ADDR")
	if serverAddr == "" {
		serverAddr = ":8080"
	}

	dataPath := os.Getenv("LEVELGEN_DATA")
	if dataPath == "" {
		dataPath = "data"
	}

	dbPath := os.Getenv("LEVELGEN_DB")
	if dbPath == "" {
		dbPath = filepath.Join(dataPath, "index.db")
	}

	tuning, err := LoadTuning(os.Getenv("LEVELGEN_TUNING"))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerAddr: serverAddr,
		DataPath:   dataPath,
		DBPath:     dbPath,
		Tuning:     tuning,
	}, nil
}

// LoadTuning overlays the YAML file at path onto the default tuning. An
// empty path returns the defaults.
func LoadTuning(path string) (generation.Tuning, error) {
	t := generation.DefaultTuning()
	if path == "" {
		return t, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning: %w", err)
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid tuning in %s: %w", filepath.Base(path), err)
	}
	return t, nil
}
