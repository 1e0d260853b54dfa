// pkg/stash/errors.go
package stash

import "fmt"

// CliNotFoundError indicates the manager's tool is not resolvable as an
// executable on PATH. The flow for this manager fails; sibling managers
// are unaffected.
type CliNotFoundError struct {
	CliName string // Executable that could not be found
}

func (e *CliNotFoundError) Error() string {
	return fmt.Sprintf("stash: %s is not available on PATH", e.CliName)
}

// CleanupError indicates the install directory could not be cleared before
// an extraction. Extraction is not attempted after this.
type CleanupError struct {
	InstallDirectory string // Directory that could not be removed
	Err              error  // Underlying error
}

func (e *CleanupError) Error() string {
	return fmt.Sprintf("stash: clearing install directory %s: %v", e.InstallDirectory, e.Err)
}

func (e *CleanupError) Unwrap() error {
	return e.Err
}
