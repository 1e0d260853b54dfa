// pkg/stash/stash.go
package stash

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/depstash/depstash/pkg/archive"
	"github.com/depstash/depstash/pkg/cachekey"
	"github.com/depstash/depstash/pkg/fingerprint"
	"github.com/depstash/depstash/pkg/manager"
	"github.com/depstash/depstash/pkg/platform"
	"github.com/depstash/depstash/pkg/runner"
)

// Runner executes the composed install command for a manager.
type Runner interface {
	Run(ctx context.Context, command string) error
}

// Archiver abstracts the archive engine for testability.
type Archiver interface {
	Compress(ctx context.Context, sourceDir, destPath string) error
	Extract(ctx context.Context, archivePath, destDir string) error
}

// VersionFunc queries the installed tool's version string for a manager.
type VersionFunc func(ctx context.Context, cfg *manager.Config) (string, error)

// Stash orchestrates the cache flow for one manager at a time: it decides
// hit versus miss from the manifest digest and sequences install+compress
// or extract accordingly. A Stash holds no per-flow state, so independent
// manager flows may run concurrently on the same Stash; each manager owns
// a disjoint cache subdirectory.
type Stash struct {
	runner   Runner
	archiver Archiver
	lookPath func(string) bool
	version  VersionFunc
	logger   *log.Logger
}

// Option configures a Stash.
type Option func(*Stash)

// WithRunner replaces the install runner.
func WithRunner(r Runner) Option {
	return func(s *Stash) {
		s.runner = r
	}
}

// WithArchiver replaces the archive engine.
func WithArchiver(a Archiver) Option {
	return func(s *Stash) {
		s.archiver = a
	}
}

// WithLookup replaces the PATH availability probe.
func WithLookup(fn func(name string) bool) Option {
	return func(s *Stash) {
		s.lookPath = fn
	}
}

// WithVersionFunc replaces the tool version query.
func WithVersionFunc(fn VersionFunc) Option {
	return func(s *Stash) {
		s.version = fn
	}
}

// WithLogger sets the logger for flow tracing.
func WithLogger(logger *log.Logger) Option {
	return func(s *Stash) {
		s.logger = logger
	}
}

// New creates a Stash wired to the real runner, archive engine, and PATH
// lookup.
func New(opts ...Option) *Stash {
	logger := log.New(io.Discard, "", 0)
	r := runner.New()

	s := &Stash{
		runner:   r,
		archiver: archive.NewEngine(),
		lookPath: platform.CommandExists,
		version: func(ctx context.Context, cfg *manager.Config) (string, error) {
			return manager.CliVersion(ctx, r, cfg)
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// flow carries the values one run threads between states.
type flow struct {
	cfg       *manager.Config
	cacheDir  string
	cachePath string
}

// Run drives the cache flow for one manager configuration to completion
// and returns the first error encountered, if any. A missing manifest is
// not an error: there is nothing to install.
func (s *Stash) Run(ctx context.Context, cfg *manager.Config) error {
	f := &flow{cfg: cfg}

	for st := stateStart; st != stateDone; {
		next, err := s.step(ctx, st, f)
		if err != nil {
			s.logger.Printf("[%s] %s failed: %v", cfg.CliName, st, err)
			return err
		}
		st = next
	}

	return nil
}

// step executes one state and returns the next. Any error terminates the
// flow; remaining states are never executed.
func (s *Stash) step(ctx context.Context, st state, f *flow) (state, error) {
	cfg := f.cfg

	switch st {
	case stateStart:
		s.logger.Printf("[%s] Starting cache flow", cfg.CliName)
		return stateCheckManifest, nil

	case stateCheckManifest:
		if _, err := os.Stat(cfg.ConfigPath); os.IsNotExist(err) {
			s.logger.Printf("[%s] No manifest at %s, nothing to install", cfg.CliName, cfg.ConfigPath)
			return stateDone, nil
		}
		return stateCheckCli, nil

	case stateCheckCli:
		if !s.lookPath(cfg.CliName) {
			return stateDone, &CliNotFoundError{CliName: cfg.CliName}
		}
		return stateComputeKey, nil

	case stateComputeKey:
		d, err := fingerprint.File(cfg.ConfigPath)
		if err != nil {
			return stateDone, err
		}

		version, err := s.version(ctx, cfg)
		if err != nil {
			return stateDone, err
		}

		f.cacheDir, f.cachePath = cachekey.Resolve(cfg.CacheDirectory, cachekey.Key{
			CliName:    cfg.CliName,
			CliVersion: version,
			Digest:     d,
			Ext:        cfg.Format.Ext(),
		})
		s.logger.Printf("[%s] Cache path: %s", cfg.CliName, f.cachePath)

		if !cfg.ForceRefresh && exists(f.cachePath) {
			s.logger.Printf("[%s] Cache hit", cfg.CliName)
			return stateExtracting, nil
		}
		if cfg.ForceRefresh {
			s.logger.Printf("[%s] Force refresh, skipping cache lookup", cfg.CliName)
		} else {
			s.logger.Printf("[%s] Cache miss", cfg.CliName)
		}
		return stateInstalling, nil

	case stateExtracting:
		// Clear the destination so no stale files from a previous,
		// differently-versioned install survive the extraction.
		if err := os.RemoveAll(cfg.InstallDirectory); err != nil {
			return stateDone, &CleanupError{InstallDirectory: cfg.InstallDirectory, Err: err}
		}
		if err := s.archiver.Extract(ctx, f.cachePath, filepath.Dir(cfg.InstallDirectory)); err != nil {
			return stateDone, err
		}
		s.logger.Printf("[%s] Restored %s from cache", cfg.CliName, cfg.InstallDirectory)
		return stateDone, nil

	case stateInstalling:
		// A failed install never reaches the archiving state, so a bad
		// manifest or network blip cannot poison the cache with an
		// empty snapshot.
		if err := s.runner.Run(ctx, cfg.InstallInvocation()); err != nil {
			return stateDone, err
		}
		return stateArchiving, nil

	case stateArchiving:
		if err := s.archiver.Compress(ctx, cfg.InstallDirectory, f.cachePath); err != nil {
			return stateDone, err
		}
		s.logger.Printf("[%s] Cached %s", cfg.CliName, f.cachePath)
		return stateDone, nil
	}

	return stateDone, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
