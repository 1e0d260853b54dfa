// pkg/manager/types.go
package manager

import (
	"strings"

	"github.com/depstash/depstash/pkg/archive"
)

// Config describes one package manager: how it is invoked, where its
// manifest lives, and where it materializes dependencies. The cache flow
// treats a Config as read-only.
type Config struct {
	// CliName identifies the manager, e.g. "npm". It is the executable
	// probed on PATH, a log prefix, and a cache path segment.
	CliName string `yaml:"cli_name"`

	// ConfigPath is the manifest file whose content keys the cache.
	ConfigPath string `yaml:"config_path"`

	// InstallDirectory is where the manager materializes dependencies,
	// e.g. "node_modules".
	InstallDirectory string `yaml:"install_directory"`

	// InstallCommand and InstallOptions are composed into one shell
	// invocation.
	InstallCommand string `yaml:"install_command"`
	InstallOptions string `yaml:"install_options"`

	// VersionArgs are passed to CliName to query the installed tool's
	// version. Defaults to ["--version"].
	VersionArgs []string `yaml:"version_args"`

	// Format selects the archive codec. Defaults to gzip (.tar.gz).
	Format archive.Format `yaml:"format"`

	// CacheDirectory is the root under which all cache archives for all
	// managers are stored. Supplied by the surrounding tool, not the
	// descriptor file.
	CacheDirectory string `yaml:"-"`

	// ForceRefresh bypasses any existing cache entry unconditionally.
	ForceRefresh bool `yaml:"-"`
}

// InstallInvocation composes the install command and its options into the
// single shell command string the runner executes.
func (c *Config) InstallInvocation() string {
	return strings.TrimSpace(c.InstallCommand + " " + c.InstallOptions)
}
