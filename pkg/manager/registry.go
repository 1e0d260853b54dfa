// pkg/manager/registry.go
package manager

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Descriptor files follow the <name>Config.yaml naming convention, e.g.
// npmConfig.yaml registers the "npm" manager.
const (
	descriptorSuffix    = "Config.yaml"
	descriptorSuffixAlt = "Config.yml"
)

// Registry discovers manager descriptors in a fixed directory. The
// directory is scanned once per Registry; repeated calls return the same
// cached mapping. Construct one at startup and pass it by reference.
type Registry struct {
	dir string

	once    sync.Once
	entries map[string]string
	err     error
}

// NewRegistry creates a Registry pointed at a descriptor directory.
func NewRegistry(dir string) *Registry {
	return &Registry{dir: dir}
}

// Available returns the name to descriptor-path mapping for every manager
// configured in the registry directory. A missing directory yields an
// empty mapping, not an error.
func (r *Registry) Available() (map[string]string, error) {
	r.once.Do(r.scan)
	return r.entries, r.err
}

// Lookup returns the descriptor path for a single manager name.
func (r *Registry) Lookup(name string) (string, error) {
	entries, err := r.Available()
	if err != nil {
		return "", err
	}
	path, ok := entries[name]
	if !ok {
		return "", fmt.Errorf("registry: manager %q is not configured in %s", name, r.dir)
	}
	return path, nil
}

func (r *Registry) scan() {
	r.entries = make(map[string]string)

	dirEntries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		r.err = fmt.Errorf("registry: scanning %s: %w", r.dir, err)
		return
	}

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		name := descriptorName(entry.Name())
		if name == "" {
			continue
		}
		r.entries[name] = filepath.Join(r.dir, entry.Name())
	}
}

// descriptorName extracts the manager name from a descriptor filename, or
// returns "" when the filename does not match the naming convention.
func descriptorName(filename string) string {
	for _, suffix := range []string{descriptorSuffix, descriptorSuffixAlt} {
		if strings.HasSuffix(filename, suffix) && len(filename) > len(suffix) {
			return strings.TrimSuffix(filename, suffix)
		}
	}
	return ""
}
