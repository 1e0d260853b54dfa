// pkg/archive/errors.go
package archive

import "fmt"

// CompressError indicates the source tree could not be read or the
// archive could not be written. No partial archive is ever left at the
// destination path.
type CompressError struct {
	SourceDir string // Directory that was being archived
	Err       error  // Underlying error
}

func (e *CompressError) Error() string {
	return fmt.Sprintf("archive: compressing %s: %v", e.SourceDir, e.Err)
}

func (e *CompressError) Unwrap() error {
	return e.Err
}

// ExtractError indicates the archive is corrupt, unreadable, or could
// not be written out to the destination.
type ExtractError struct {
	ArchivePath string // Archive that was being extracted
	Err         error  // Underlying error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("archive: extracting %s: %v", e.ArchivePath, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}
