// pkg/fingerprint/fingerprint.go
package fingerprint

import (
	"fmt"
	"os"

	"github.com/opencontainers/go-digest"
)

// ReadError indicates a manifest that was expected to exist could not be
// read. Callers check for the manifest before fingerprinting, so hitting
// this is an unexpected condition, not a normal branch.
type ReadError struct {
	Path string // Manifest path that failed to read
	Err  error  // Underlying error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("fingerprint: reading manifest %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// File computes a SHA-256 digest of the file's full contents.
// Byte-identical files always produce the same digest; any byte
// difference, including whitespace, produces a different one.
func File(path string) (digest.Digest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	return digest.FromBytes(data), nil
}
