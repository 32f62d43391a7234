package mm

import (
	"log/slog"

	"github.com/mm-notes/mm/pkg/paths"
	"github.com/mm-notes/mm/pkg/repo"
)

// Version of the library and the mm command.
var Version = "0.1.0"

// --- Types ---

// Repository is a public alias for a notes repository.
type Repository = repo.Repository

// Resolver is a public alias for the data directory resolver.
type Resolver = paths.Resolver

// DefaultRepositoryName is used when no repository name is given.
const DefaultRepositoryName = paths.DefaultRepositoryName

// --- Configuration ---

// Option configures Open.
type Option = repo.Option

// NoteOption configures note operations.
type NoteOption = repo.NoteOption

// WithName selects the repository by name instead of the default one.
func WithName(name string) Option {
	return repo.WithName(name)
}

// WithResolver overrides where repositories live (home directory and data folder).
func WithResolver(r *Resolver) Option {
	return repo.WithResolver(r)
}

// WithLogger sets the logger for the repository.
func WithLogger(logger *slog.Logger) Option {
	return repo.WithLogger(logger)
}

// InFolder places a note inside a folder of the repository.
func InFolder(folder string) NoteOption {
	return repo.InFolder(folder)
}

// --- Factory ---

// Open opens the selected repository, creating its directory and running
// git init when none exists yet.
func Open(opts ...Option) (*Repository, error) {
	return repo.OpenOrCreate(opts...)
}
