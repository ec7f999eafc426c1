package mcp

import (
	"errors"
	"fmt"

	"github.com/akfite/dirlist/internal/core/lister"
)

// listError translates lister errors into messages that tell the client
// what went wrong and what to try instead.
func listError(err error) error {
	var notFound *lister.NotFoundError
	if errors.As(err, &notFound) {
		return fmt.Errorf("directory not found: %s (check the path, or call fs_list on its parent to see what exists)", notFound.Path)
	}

	var notDir *lister.NotDirError
	if errors.As(err, &notDir) {
		return fmt.Errorf("not a directory: %s (fs_list only accepts directories; list the parent to inspect this entry)", notDir.Path)
	}

	var canonErr *lister.CanonicalizeError
	if errors.As(err, &canonErr) {
		return fmt.Errorf("cannot canonicalize %s: %v (retry without canonicalize to list the directory as-is)", canonErr.Path, canonErr.Err)
	}

	var statusErr *lister.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Errorf("cannot classify %s: %v (retry without strict to degrade unreadable entries to the unknown type)", statusErr.Path, statusErr.Err)
	}

	return err
}
