package core

import (
	"io/fs"

	"github.com/pkg/errors"
)

// Category classifies failures so callers can react without matching on messages.
type Category int

const (
	// CategoryGeneric is the fallback for errors that are not otherwise classified.
	CategoryGeneric Category = iota
	// CategoryOs covers filesystem and OS failures (permissions, missing paths, collisions).
	CategoryOs
	// CategoryGit covers version-control backend failures.
	CategoryGit
	// CategoryRepo covers validation failures local to mm (invalid names).
	CategoryRepo
	// CategoryEditor covers editor launch and exit failures.
	CategoryEditor
)

func (c Category) String() string {
	switch c {
	case CategoryOs:
		return "os"
	case CategoryGit:
		return "git"
	case CategoryRepo:
		return "repo"
	case CategoryEditor:
		return "editor"
	default:
		return "generic"
	}
}

// ErrInvalidName is wrapped by every name validation failure.
var ErrInvalidName = errors.New("invalid name")

// Error is a categorized failure. It unwraps to its cause, so errors.Is keeps
// working against the underlying OS or backend error.
type Error struct {
	Category Category
	Msg      string
	Err      error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	if e.Msg == "" {
		return e.Err.Error()
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a categorized error without a cause.
func NewError(cat Category, msg string) error {
	return &Error{Category: cat, Msg: msg}
}

// Wrap tags err with a category. A nil err yields nil.
func Wrap(cat Category, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Category: cat, Msg: msg, Err: errors.WithStack(err)}
}

// OsError tags err as an OS failure.
func OsError(err error, msg string) error {
	return Wrap(CategoryOs, err, msg)
}

// GitError tags err as a backend failure.
func GitError(err error, msg string) error {
	return Wrap(CategoryGit, err, msg)
}

// CategoryOf returns the category of the outermost *Error in the chain,
// or CategoryGeneric when there is none.
func CategoryOf(err error) Category {
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}
	return CategoryGeneric
}

// IsCategory reports whether err carries the given category.
func IsCategory(err error, cat Category) bool {
	return err != nil && CategoryOf(err) == cat
}

// IsAlreadyExists reports whether err was caused by an existing file or directory.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, fs.ErrExist)
}
