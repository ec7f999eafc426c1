package lister

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Scanner abstracts the filesystem operations the lister depends on so the
// listing logic can be exercised against an in-memory tree in tests.
type Scanner interface {
	// ReadDir returns the immediate children of the directory, in the
	// order the platform yields them.
	ReadDir(path string) ([]fs.DirEntry, error)

	// Stat queries an entry's status, following symlinks.
	Stat(path string) (fs.FileInfo, error)

	// Lstat queries an entry's status without following symlinks.
	Lstat(path string) (fs.FileInfo, error)

	// Canonicalize resolves a path to its absolute, symlink-free,
	// normalized form.
	Canonicalize(path string) (string, error)
}

// osScanner is the default Scanner backed by the real filesystem.
type osScanner struct{}

// NewOSScanner returns a Scanner backed by the local filesystem.
func NewOSScanner() Scanner {
	return osScanner{}
}

func (osScanner) ReadDir(path string) ([]fs.DirEntry, error) {
	// os.ReadDir sorts by name; open the directory ourselves to keep the
	// raw scan order the platform yields.
	dir, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer dir.Close()
	return dir.ReadDir(-1)
}

func (osScanner) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (osScanner) Lstat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}

func (osScanner) Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
