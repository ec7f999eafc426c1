package lister

import "fmt"

// NotFoundError is returned when the target directory does not exist or is
// not accessible.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("directory not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// NotDirError is returned when the target path exists but is not a directory.
type NotDirError struct {
	Path string
}

func (e *NotDirError) Error() string {
	return fmt.Sprintf("not a directory: %s", e.Path)
}

// CanonicalizeError is returned when canonicalization was requested and
// resolving one of the entries failed. The whole listing fails; there is no
// partial result.
type CanonicalizeError struct {
	Path string
	Err  error
}

func (e *CanonicalizeError) Error() string {
	return fmt.Sprintf("cannot canonicalize %s: %v", e.Path, e.Err)
}

func (e *CanonicalizeError) Unwrap() error {
	return e.Err
}

// StatusError is returned in strict mode when classifying an entry failed.
// Outside strict mode classification failures degrade to TypeUnknown instead.
type StatusError struct {
	Path string
	Err  error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cannot stat %s: %v", e.Path, e.Err)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}
