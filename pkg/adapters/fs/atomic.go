package fs

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/mm-notes/mm/pkg/core"
)

// TempFilePrefix names the sibling file a note is staged in before the rename.
// The leading dot keeps it out of note listings.
const TempFilePrefix = ".mm-tmp-"

// WriteFileAtomic replaces the content of a note through a temp file and a
// rename. An existing note keeps its permissions.
func WriteFileAtomic(filename string, data []byte) error {
	perm := os.FileMode(filePerm)
	if info, err := os.Stat(filename); err == nil {
		perm = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return core.OsError(err, "write note")
	}

	return core.OsError(replace(filename, data, perm), "write note")
}

func replace(filename string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(filename), TempFilePrefix+"*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write temp file")
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "sync temp file")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return errors.Wrap(err, "chmod temp file")
	}
	return errors.Wrapf(os.Rename(tmp.Name(), filename), "rename temp file to %s", filename)
}
