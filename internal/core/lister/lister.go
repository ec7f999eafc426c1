// Package lister enumerates the immediate children of a directory and
// classifies each entry by type.
//
// A listing is a point-in-time snapshot: entries may be created or removed
// by other processes while the scan is running, and such races only affect
// the individual entry, never the rest of the listing.
package lister

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/akfite/dirlist/internal/core/logger"
)

// Entry describes one immediate child of a scanned directory.
// Entries are ephemeral values owned by the Listing that contains them.
type Entry struct {
	// Path is the entry path as yielded by the scan, or its canonical
	// form when canonicalization was requested.
	Path string `json:"path"`
	// Name is the final path component.
	Name string `json:"name"`
	// Type is the entry classification.
	Type EntryType `json:"type"`
}

// Listing holds the entries found by one scan, in scan order.
type Listing struct {
	Entries []Entry `json:"entries"`
}

// Paths returns the entry paths, index-aligned with Names and TypeCodes.
func (l *Listing) Paths() []string {
	paths := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		paths[i] = e.Path
	}
	return paths
}

// Names returns the entry base names, index-aligned with Paths and TypeCodes.
func (l *Listing) Names() []string {
	names := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		names[i] = e.Name
	}
	return names
}

// TypeCodes returns the numeric type of each entry, index-aligned with
// Paths and Names.
func (l *Listing) TypeCodes() []uint8 {
	codes := make([]uint8, len(l.Entries))
	for i, e := range l.Entries {
		codes[i] = uint8(e.Type)
	}
	return codes
}

// IsDir returns a directory flag per entry for callers that only need the
// boolean projection of TypeCodes.
func (l *Listing) IsDir() []bool {
	flags := make([]bool, len(l.Entries))
	for i, e := range l.Entries {
		flags[i] = e.Type == TypeDirectory
	}
	return flags
}

// ListOptions controls a single List call.
type ListOptions struct {
	// Canonicalize resolves every entry path to its absolute,
	// symlink-free form. Resolution failure for any entry fails the whole
	// call; a listing is never partially canonical.
	Canonicalize bool `json:"canonicalize" yaml:"canonicalize"`

	// ReportSymlinks classifies entries without following links, so a
	// symlink is reported as TypeSymlink rather than by its target's
	// type. The default follows links.
	ReportSymlinks bool `json:"report_symlinks" yaml:"report_symlinks"`

	// Strict makes a per-entry classification failure abort the call.
	// The default degrades the entry to TypeUnknown (or TypeNotFound for
	// entries that vanished mid-scan) and keeps going.
	Strict bool `json:"strict" yaml:"strict"`
}

// Lister lists directory contents. The zero-value configuration scans the
// local filesystem; tests inject an in-memory Scanner.
type Lister struct {
	scanner Scanner
	log     logger.Logger
}

// Option configures a Lister.
type Option func(*Lister)

// WithScanner replaces the filesystem scanner.
func WithScanner(s Scanner) Option {
	return func(l *Lister) {
		l.scanner = s
	}
}

// WithLogger sets the logger used for per-entry diagnostics.
func WithLogger(log logger.Logger) Option {
	return func(l *Lister) {
		l.log = log
	}
}

// New creates a Lister.
func New(opts ...Option) *Lister {
	l := &Lister{
		scanner: NewOSScanner(),
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// List performs one non-recursive scan of dir and classifies every child.
//
// The returned listing preserves the scanner's order and contains exactly
// the entries the scan yielded. List has no side effects; it only performs
// read-only filesystem queries and allocates call-local memory, so
// concurrent calls are safe.
func (l *Lister) List(ctx context.Context, dir string, opts ListOptions) (*Listing, error) {
	if dir == "" {
		return nil, &NotFoundError{Path: dir}
	}

	info, err := l.scanner.Stat(dir)
	if err != nil {
		return nil, &NotFoundError{Path: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &NotDirError{Path: dir}
	}

	children, err := l.scanner.ReadDir(dir)
	if err != nil {
		return nil, &NotFoundError{Path: dir, Err: err}
	}

	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(dir, child.Name())
		if opts.Canonicalize {
			resolved, err := l.scanner.Canonicalize(path)
			if err != nil {
				return nil, &CanonicalizeError{Path: path, Err: err}
			}
			path = resolved
		}

		typ, err := l.classify(path, opts)
		if err != nil {
			if opts.Strict {
				return nil, &StatusError{Path: path, Err: err}
			}
			l.log.Debug("entry classification failed", "path", path, "error", err)
		}

		entries = append(entries, Entry{
			Path: path,
			Name: filepath.Base(path),
			Type: typ,
		})
	}

	return &Listing{Entries: entries}, nil
}

// classify determines the type of a single entry. On failure it returns the
// degraded type alongside the error so the caller can choose between strict
// and best-effort behavior.
func (l *Lister) classify(path string, opts ListOptions) (EntryType, error) {
	stat := l.scanner.Stat
	if opts.ReportSymlinks {
		stat = l.scanner.Lstat
	}

	info, err := stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return TypeNotFound, err
		}
		return TypeUnknown, err
	}
	return TypeFromMode(info.Mode()), nil
}
