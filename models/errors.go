package models

import "fmt"

// LoadError means the binary could not be opened at all: missing file,
// unreadable file, or unrecognized container format.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Cause supports github.com/pkg/errors traversal.
func (e *LoadError) Cause() error { return e.Err }

// ArchNotFoundError means a universal binary has no slice declared for the
// requested architecture. There is no fallback to another slice.
type ArchNotFoundError struct {
	Arch string
}

func (e *ArchNotFoundError) Error() string {
	return fmt.Sprintf("could not find fat binary entry for arch '%s'", e.Arch)
}

// MissingSectionError means one of the required reflection sections is not
// present in the object. Optional section absence is never an error.
type MissingSectionError struct {
	Binary   string
	Category Category
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("%s is missing the %s section", e.Binary, e.Category)
}
