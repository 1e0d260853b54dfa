// pkg/archive/format.go
package archive

import "fmt"

// Format selects the compression codec used around the tar stream.
type Format string

const (
	// FormatGzip produces .tar.gz archives. This is the default.
	FormatGzip Format = "gzip"
	// FormatXz produces .tar.xz archives.
	FormatXz Format = "xz"
)

// Ext returns the archive filename extension for the format, including
// the leading dot.
func (f Format) Ext() string {
	switch f {
	case FormatXz:
		return ".tar.xz"
	default:
		return ".tar.gz"
	}
}

// Validate checks that the format names a supported codec. The empty
// string is accepted and treated as gzip.
func (f Format) Validate() error {
	switch f {
	case "", FormatGzip, FormatXz:
		return nil
	default:
		return fmt.Errorf("archive: unsupported format %q", string(f))
	}
}
