// errors.go
package depstash

import (
	"github.com/depstash/depstash/pkg/archive"
	"github.com/depstash/depstash/pkg/fingerprint"
	"github.com/depstash/depstash/pkg/runner"
	"github.com/depstash/depstash/pkg/stash"
)

// The cache flow fails with exactly one of a closed set of error kinds.
// Callers branch on kind with errors.As rather than parsing messages.
type (
	// ManifestReadError indicates a previously-confirmed manifest could
	// not be read for fingerprinting.
	ManifestReadError = fingerprint.ReadError

	// CliNotFoundError indicates the manager's tool is not on PATH.
	CliNotFoundError = stash.CliNotFoundError

	// CleanupError indicates the install directory could not be cleared
	// before extraction.
	CleanupError = stash.CleanupError

	// ExtractError indicates a corrupt or unreadable archive, or an
	// extraction write failure.
	ExtractError = archive.ExtractError

	// InstallError indicates the external install process exited
	// non-zero.
	InstallError = runner.InstallError

	// CompressError indicates the source tree could not be read or the
	// archive could not be written.
	CompressError = archive.CompressError
)
