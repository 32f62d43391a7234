package core

import (
	"strings"

	"github.com/pkg/errors"
)

// reserved names would address the working tree itself, its parent, or git metadata.
var reserved = map[string]bool{
	".":    true,
	"..":   true,
	".git": true,
}

func ensureSegment(kind, name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || reserved[name] {
		return &Error{
			Category: CategoryRepo,
			Msg:      "invalid " + kind + " name: '" + name + "'",
			Err:      errors.WithStack(ErrInvalidName),
		}
	}
	return nil
}

// EnsureValidFolderName checks that name is a single, non-empty path segment.
// Folders only nest one level below the working directory.
func EnsureValidFolderName(name string) error {
	return ensureSegment("folder", name)
}

// EnsureValidNoteName applies the folder rules to note names.
func EnsureValidNoteName(name string) error {
	return ensureSegment("note", name)
}

// EnsureValidRepositoryName applies the folder rules to repository names.
func EnsureValidRepositoryName(name string) error {
	return ensureSegment("repository", name)
}
