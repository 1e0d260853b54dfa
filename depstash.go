// depstash.go
package depstash

import (
	"context"

	"github.com/depstash/depstash/pkg/archive"
	"github.com/depstash/depstash/pkg/manager"
	"github.com/depstash/depstash/pkg/stash"
)

// Re-export the library types for convenience
type (
	// ManagerConfig describes one package manager's manifest, install
	// command, and install directory.
	ManagerConfig = manager.Config
	// Registry discovers configured manager descriptors.
	Registry = manager.Registry
	// Format selects the archive compression codec.
	Format = archive.Format
	// Option configures a Stash.
	Option = stash.Option
)

// Re-export archive formats
const (
	FormatGzip = archive.FormatGzip
	FormatXz   = archive.FormatXz
)

// Stash is the dependency-installation cache. For each manager it decides
// cache hit versus miss from a content digest of the manifest and either
// restores the install directory from an archived snapshot or runs the
// install command and archives the result.
type Stash struct {
	inner *stash.Stash
}

// New creates a Stash wired to the real install runner, archive engine,
// and PATH lookup. Options may replace any collaborator.
func New(opts ...Option) *Stash {
	return &Stash{inner: stash.New(opts...)}
}

// Run drives the cache flow for one manager configuration: check manifest,
// check tool availability, compute the cache key, then extract on a hit or
// install and archive on a miss. It returns the first error encountered,
// if any. A missing manifest means nothing to install and is not an error.
func (s *Stash) Run(ctx context.Context, cfg *ManagerConfig) error {
	return s.inner.Run(ctx, cfg)
}

// NewRegistry creates a descriptor registry for the given directory. The
// directory is scanned once; files named <name>Config.yaml register the
// manager <name>.
func NewRegistry(dir string) *Registry {
	return manager.NewRegistry(dir)
}

// LoadManagerConfig reads and validates a manager descriptor file.
func LoadManagerConfig(path string) (*ManagerConfig, error) {
	return manager.Load(path)
}
