package lister

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRealFilesystem(t *testing.T) {
	ctx := context.Background()

	t.Run("lists a populated directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "b"), 0o755))

		l := New()
		listing, err := l.List(ctx, dir, ListOptions{})
		require.NoError(t, err)
		require.Len(t, listing.Entries, 2)

		// Scan order is platform-defined; compare as sets.
		byName := make(map[string]Entry, len(listing.Entries))
		for _, e := range listing.Entries {
			byName[e.Name] = e
		}
		require.Contains(t, byName, "a.txt")
		require.Contains(t, byName, "b")
		assert.Equal(t, TypeRegular, byName["a.txt"].Type)
		assert.Equal(t, TypeDirectory, byName["b"].Type)
		assert.Equal(t, filepath.Join(dir, "a.txt"), byName["a.txt"].Path)
	})

	t.Run("two scans of an unchanged directory agree", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"one", "two", "three"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
		}

		l := New()
		first, err := l.List(ctx, dir, ListOptions{})
		require.NoError(t, err)
		second, err := l.List(ctx, dir, ListOptions{})
		require.NoError(t, err)

		assert.ElementsMatch(t, first.Names(), second.Names())
	})

	t.Run("empty directory", func(t *testing.T) {
		l := New()
		listing, err := l.List(ctx, t.TempDir(), ListOptions{})
		require.NoError(t, err)
		assert.Empty(t, listing.Entries)
	})

	t.Run("missing directory", func(t *testing.T) {
		l := New()
		_, err := l.List(ctx, filepath.Join(t.TempDir(), "missing"), ListOptions{})
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("file instead of directory", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "plain")
		require.NoError(t, os.WriteFile(file, nil, 0o644))

		l := New()
		_, err := l.List(ctx, file, ListOptions{})
		var notDir *NotDirError
		require.ErrorAs(t, err, &notDir)
	})

	t.Run("relative directory keeps relative paths", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "rel.txt"), nil, 0o644))
		t.Chdir(dir)

		l := New()
		listing, err := l.List(ctx, ".", ListOptions{})
		require.NoError(t, err)
		require.Len(t, listing.Entries, 1)
		assert.Equal(t, "rel.txt", listing.Entries[0].Path)
	})

	t.Run("canonicalize makes paths absolute", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "abs.txt"), nil, 0o644))
		t.Chdir(dir)

		l := New()
		listing, err := l.List(ctx, ".", ListOptions{Canonicalize: true})
		require.NoError(t, err)
		require.Len(t, listing.Entries, 1)
		assert.True(t, filepath.IsAbs(listing.Entries[0].Path))
		assert.Equal(t, "abs.txt", listing.Entries[0].Name)
	})
}

func TestCanonicalizeIdempotent(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	scanner := NewOSScanner()
	once, err := scanner.Canonicalize(file)
	require.NoError(t, err)
	twice, err := scanner.Canonicalize(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}
