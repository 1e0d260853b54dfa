// pkg/archive/archive.go
package archive

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
)

// Engine compresses directory trees into tar archives and extracts them
// back. Each operation completes exactly once with either success or a
// typed failure, never both.
type Engine struct {
	logger *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for progress output.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an archive engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// formatForPath picks the codec from the archive filename.
func formatForPath(path string) Format {
	if strings.HasSuffix(path, ".tar.xz") {
		return FormatXz
	}
	return FormatGzip
}

// Compress archives the full recursive contents of sourceDir into a single
// compressed tar file at destPath, creating missing parent directories of
// destPath first. Entries are stored under filepath.Base(sourceDir), so
// extracting the archive at a working directory recreates the source
// directory in place. The codec is chosen from destPath's extension.
//
// The archive is written to a temporary file and renamed into place, so a
// failed or interrupted run never leaves a partial file visible at destPath.
func (e *Engine) Compress(ctx context.Context, sourceDir, destPath string) error {
	if _, err := os.Stat(sourceDir); err != nil {
		return &CompressError{SourceDir: sourceDir, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return &CompressError{SourceDir: sourceDir, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(destPath), ".depstash-*")
	if err != nil {
		return &CompressError{SourceDir: sourceDir, Err: err}
	}
	tmpPath := tmp.Name()

	if err := e.writeArchive(ctx, sourceDir, tmp, formatForPath(destPath)); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &CompressError{SourceDir: sourceDir, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &CompressError{SourceDir: sourceDir, Err: err}
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return &CompressError{SourceDir: sourceDir, Err: err}
	}

	e.logger.Printf("Wrote archive: %s", destPath)
	return nil
}

// writeArchive streams sourceDir as a compressed tar into w.
func (e *Engine) writeArchive(ctx context.Context, sourceDir string, w io.Writer, format Format) error {
	var compressor io.WriteCloser
	switch format {
	case FormatXz:
		xw, err := xz.NewWriter(w)
		if err != nil {
			return fmt.Errorf("creating xz writer: %w", err)
		}
		compressor = xw
	default:
		compressor = gzip.NewWriter(w)
	}

	tw := tar.NewWriter(compressor)
	base := filepath.Base(filepath.Clean(sourceDir))

	walkErr := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		var link string
		if info.Mode()&os.ModeSymlink != 0 {
			if link, err = os.Readlink(path); err != nil {
				return err
			}
		}

		hdr, err := tar.FileInfoHeader(info, link)
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(filepath.Join(base, rel))
		if d.IsDir() {
			hdr.Name += "/"
		}

		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		_, err = io.Copy(tw, f)
		f.Close()
		return err
	})
	if walkErr != nil {
		tw.Close()
		compressor.Close()
		return walkErr
	}

	if err := tw.Close(); err != nil {
		return err
	}
	return compressor.Close()
}

// Extract unpacks the archive's full contents into destDir, recreating the
// original directory subtree. Entries that would escape destDir are
// rejected. The codec is chosen from archivePath's extension.
func (e *Engine) Extract(ctx context.Context, archivePath, destDir string) error {
	f, err := os.Open(archivePath)
	if err != nil {
		return &ExtractError{ArchivePath: archivePath, Err: err}
	}
	defer f.Close()

	var r io.Reader
	switch formatForPath(archivePath) {
	case FormatXz:
		xr, err := xz.NewReader(f)
		if err != nil {
			return &ExtractError{ArchivePath: archivePath, Err: err}
		}
		r = xr
	default:
		gz, err := gzip.NewReader(f)
		if err != nil {
			return &ExtractError{ArchivePath: archivePath, Err: err}
		}
		defer gz.Close()
		r = gz
	}

	if err := e.unpack(ctx, tar.NewReader(r), destDir); err != nil {
		return &ExtractError{ArchivePath: archivePath, Err: err}
	}
	return nil
}

// unpack extracts each tar entry under destDir.
func (e *Engine) unpack(ctx context.Context, tr *tar.Reader, destDir string) error {
	fileCount := 0
	dirCount := 0
	symlinkCount := 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading tar entry: %w", err)
		}

		cleanPath := strings.TrimPrefix(hdr.Name, "./")
		cleanPath = strings.TrimSuffix(cleanPath, "/")
		if cleanPath == "" || cleanPath == "." {
			continue
		}
		cleanPath = filepath.FromSlash(cleanPath)
		if !filepath.IsLocal(cleanPath) {
			return fmt.Errorf("entry %q escapes destination directory", hdr.Name)
		}

		targetPath := filepath.Join(destDir, cleanPath)

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(targetPath, 0755); err != nil {
				return fmt.Errorf("creating directory %s: %w", targetPath, err)
			}
			dirCount++

		case tar.TypeSymlink:
			if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
				return fmt.Errorf("creating parent directory for symlink: %w", err)
			}
			// Remove existing symlink if it exists
			os.Remove(targetPath)
			if err := os.Symlink(hdr.Linkname, targetPath); err != nil {
				return fmt.Errorf("creating symlink %s -> %s: %w", targetPath, hdr.Linkname, err)
			}
			symlinkCount++

		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
				return fmt.Errorf("creating parent directory: %w", err)
			}

			outFile, err := os.OpenFile(targetPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(hdr.Mode))
			if err != nil {
				return fmt.Errorf("creating file %s: %w", targetPath, err)
			}

			written, err := io.Copy(outFile, tr)
			outFile.Close()
			if err != nil {
				return fmt.Errorf("writing file %s: %w", targetPath, err)
			}

			if written != hdr.Size {
				return fmt.Errorf("file size mismatch for %s: expected %d, got %d", targetPath, hdr.Size, written)
			}
			fileCount++

		default:
			e.logger.Printf("Skipping unsupported tar entry type %v for %s", hdr.Typeflag, cleanPath)
		}
	}

	e.logger.Printf("Extracted %d files, %d directories, %d symlinks", fileCount, dirCount, symlinkCount)
	return nil
}
