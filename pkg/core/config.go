// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds depstash configuration
type Config struct {
	CacheDir     string `yaml:"cache_dir"`
	ManagersDir  string `yaml:"managers_dir"`
	Debug        bool   `yaml:"debug"`
	ForceRefresh bool   `yaml:"force_refresh"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		CacheDir:     getDefaultCacheDir(),
		ManagersDir:  getDefaultManagersDir(),
		Debug:        false,
		ForceRefresh: false,
	}
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "depstash", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.CacheDir == "" {
		cfg.CacheDir = getDefaultCacheDir()
	}
	if cfg.ManagersDir == "" {
		cfg.ManagersDir = getDefaultManagersDir()
	}

	return &cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "depstash", "config.yaml")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func getDefaultCacheDir() string {
	if path := os.Getenv("DEPSTASH_CACHE_DIR"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "depstash")
	}

	return filepath.Join(home, ".cache", "depstash")
}

func getDefaultManagersDir() string {
	if path := os.Getenv("DEPSTASH_MANAGERS_DIR"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "managers"
	}

	return filepath.Join(home, ".config", "depstash", "managers")
}
