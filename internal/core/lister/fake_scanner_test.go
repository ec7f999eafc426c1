package lister

import (
	"io/fs"
	"path"
	"time"
)

// fakeScanner is an in-memory Scanner so listing behavior can be tested
// without touching a real filesystem.
type fakeScanner struct {
	nodes    map[string]fakeNode // absolute path -> node
	children map[string][]string // dir path -> child names, in scan order
	statErr  map[string]error    // injected Stat/Lstat failures
	canonErr map[string]error    // injected Canonicalize failures
}

type fakeNode struct {
	mode   fs.FileMode
	target string // symlink target path
}

func newFakeScanner() *fakeScanner {
	return &fakeScanner{
		nodes:    make(map[string]fakeNode),
		children: make(map[string][]string),
		statErr:  make(map[string]error),
		canonErr: make(map[string]error),
	}
}

func (f *fakeScanner) addDir(p string) {
	f.nodes[p] = fakeNode{mode: fs.ModeDir | 0o755}
	f.children[path.Dir(p)] = append(f.children[path.Dir(p)], path.Base(p))
}

func (f *fakeScanner) addRoot(p string) {
	f.nodes[p] = fakeNode{mode: fs.ModeDir | 0o755}
}

func (f *fakeScanner) addFile(p string, mode fs.FileMode) {
	f.nodes[p] = fakeNode{mode: mode}
	f.children[path.Dir(p)] = append(f.children[path.Dir(p)], path.Base(p))
}

func (f *fakeScanner) addSymlink(p, target string) {
	f.nodes[p] = fakeNode{mode: fs.ModeSymlink | 0o777, target: target}
	f.children[path.Dir(p)] = append(f.children[path.Dir(p)], path.Base(p))
}

// resolve follows symlink chains to the terminal node.
func (f *fakeScanner) resolve(p string) (string, fakeNode, error) {
	for i := 0; i < 16; i++ {
		node, ok := f.nodes[p]
		if !ok {
			return "", fakeNode{}, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
		}
		if node.mode&fs.ModeSymlink == 0 {
			return p, node, nil
		}
		p = node.target
	}
	return "", fakeNode{}, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrInvalid}
}

func (f *fakeScanner) ReadDir(p string) ([]fs.DirEntry, error) {
	if _, ok := f.nodes[p]; !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	names := f.children[p]
	entries := make([]fs.DirEntry, 0, len(names))
	for _, name := range names {
		node := f.nodes[path.Join(p, name)]
		entries = append(entries, fakeDirEntry{name: name, mode: node.mode})
	}
	return entries, nil
}

func (f *fakeScanner) Stat(p string) (fs.FileInfo, error) {
	if err := f.statErr[p]; err != nil {
		return nil, err
	}
	resolved, node, err := f.resolve(p)
	if err != nil {
		return nil, err
	}
	return fakeFileInfo{name: path.Base(resolved), mode: node.mode}, nil
}

func (f *fakeScanner) Lstat(p string) (fs.FileInfo, error) {
	if err := f.statErr[p]; err != nil {
		return nil, err
	}
	node, ok := f.nodes[p]
	if !ok {
		return nil, &fs.PathError{Op: "lstat", Path: p, Err: fs.ErrNotExist}
	}
	return fakeFileInfo{name: path.Base(p), mode: node.mode}, nil
}

func (f *fakeScanner) Canonicalize(p string) (string, error) {
	if err := f.canonErr[p]; err != nil {
		return "", err
	}
	resolved, _, err := f.resolve(p)
	if err != nil {
		return "", err
	}
	return resolved, nil
}

type fakeDirEntry struct {
	name string
	mode fs.FileMode
}

func (e fakeDirEntry) Name() string               { return e.name }
func (e fakeDirEntry) IsDir() bool                { return e.mode.IsDir() }
func (e fakeDirEntry) Type() fs.FileMode          { return e.mode.Type() }
func (e fakeDirEntry) Info() (fs.FileInfo, error) { return fakeFileInfo{e.name, e.mode}, nil }

type fakeFileInfo struct {
	name string
	mode fs.FileMode
}

func (i fakeFileInfo) Name() string       { return i.name }
func (i fakeFileInfo) Size() int64        { return 0 }
func (i fakeFileInfo) Mode() fs.FileMode  { return i.mode }
func (i fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (i fakeFileInfo) IsDir() bool        { return i.mode.IsDir() }
func (i fakeFileInfo) Sys() any           { return nil }
