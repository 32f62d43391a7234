// Package fs holds the filesystem primitives mm builds notes and folders with.
// Every failure is returned as an Os-category core.Error wrapping the *fs.PathError.
package fs

import (
	"os"

	"github.com/mm-notes/mm/pkg/core"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// CreateDirRecursive creates path and any missing parents. An existing directory is not an error.
func CreateDirRecursive(path string) error {
	return core.OsError(os.MkdirAll(path, dirPerm), "create directory")
}

// CreateDir creates exactly path. It fails if path exists or its parent is missing.
func CreateDir(path string) error {
	return core.OsError(os.Mkdir(path, dirPerm), "create directory")
}

// CreateNewFile creates an empty file at path, failing if it already exists.
// This is the only guard against overwriting an existing note.
func CreateNewFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return core.OsError(err, "create note")
	}
	return core.OsError(f.Close(), "create note")
}

// Exists reports whether path can be stat'ed. Inaccessible paths count as absent.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
