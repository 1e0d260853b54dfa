// pkg/cachekey/key.go
package cachekey

import (
	"path/filepath"
	"strings"

	"github.com/opencontainers/go-digest"
)

// Key identifies one cache entry. Two manifests with byte-identical content
// under the same manager and tool version always map to the same key.
type Key struct {
	CliName    string        // Package manager name (e.g. "npm")
	CliVersion string        // Installed tool version, namespaces the cache
	Digest     digest.Digest // Digest of the manifest contents
	Ext        string        // Archive extension including the leading dot
}

// Resolve composes the cache directory and archive path for a key.
// Pure path composition, no I/O:
//
//	cacheDir  = cacheRoot/cliName/cliVersion
//	cachePath = cacheDir/<digest-hex><ext>
//
// Names and versions occupy separate path segments, so keys never collide
// across managers or tool versions.
func Resolve(cacheRoot string, key Key) (cacheDir, cachePath string) {
	cacheDir = filepath.Join(cacheRoot, key.CliName, SanitizeVersion(key.CliVersion))
	cachePath = filepath.Join(cacheDir, key.Digest.Encoded()+key.Ext)
	return cacheDir, cachePath
}

// SanitizeVersion makes a tool version string safe to use as a single
// path segment.
func SanitizeVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "unknown"
	}
	return strings.NewReplacer("/", "_", "\\", "_", ":", "_", " ", "_").Replace(v)
}
