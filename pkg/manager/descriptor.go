// pkg/manager/descriptor.go
package manager

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/depstash/depstash/pkg/archive"
)

// Load reads and parses a manager descriptor file. Relative manifest and
// install directory paths are resolved against the current process working
// directory, so the returned Config carries absolute paths only.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manager descriptor: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing manager descriptor %s: %w", path, err)
	}

	if err := validate(&cfg, path); err != nil {
		return nil, err
	}

	// Defaults
	if len(cfg.VersionArgs) == 0 {
		cfg.VersionArgs = []string{"--version"}
	}
	if cfg.Format == "" {
		cfg.Format = archive.FormatGzip
	}

	if cfg.ConfigPath, err = filepath.Abs(cfg.ConfigPath); err != nil {
		return nil, fmt.Errorf("resolving manifest path: %w", err)
	}
	if cfg.InstallDirectory, err = filepath.Abs(cfg.InstallDirectory); err != nil {
		return nil, fmt.Errorf("resolving install directory: %w", err)
	}

	return &cfg, nil
}

func validate(cfg *Config, path string) error {
	switch {
	case cfg.CliName == "":
		return fmt.Errorf("manager descriptor %s: cli_name is required", path)
	case cfg.ConfigPath == "":
		return fmt.Errorf("manager descriptor %s: config_path is required", path)
	case cfg.InstallDirectory == "":
		return fmt.Errorf("manager descriptor %s: install_directory is required", path)
	case cfg.InstallCommand == "":
		return fmt.Errorf("manager descriptor %s: install_command is required", path)
	}
	if err := cfg.Format.Validate(); err != nil {
		return fmt.Errorf("manager descriptor %s: %w", path, err)
	}
	return nil
}
