package fs

import (
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/pak/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileOps = (*Ops)(nil)

// Ops implements ports.FileOps against the real filesystem.
type Ops struct{}

// NewOps creates a new Ops.
func NewOps() *Ops {
	return &Ops{}
}

// CopyFile copies src to dst verbatim.
func (o *Ops) CopyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open source file"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.Create(dst) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output file"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy file content"), "path", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close output file"), "path", dst)
	}
	return nil
}

// EnsureDir creates dir and any missing parents.
func (o *Ops) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir)
	}
	return nil
}

// Exists reports whether path exists as a regular file.
func (o *Ops) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ListFiles returns the relative paths of all regular files under root.
func (o *Ops) ListFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return relErr
			}
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to walk directory"), "path", root)
	}
	return files, nil
}

// Remove deletes the file at path.
func (o *Ops) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove file"), "path", path)
	}
	return nil
}
