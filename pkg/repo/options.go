package repo

import (
	"log/slog"

	"github.com/mm-notes/mm/pkg/paths"
)

// options holds the configuration for OpenOrCreate.
type options struct {
	name     string
	named    bool
	resolver *paths.Resolver
	logger   *slog.Logger
}

// Option configures OpenOrCreate.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		resolver: paths.NewResolver(),
	}
}

// WithName addresses a repository by name. Without it the resolver's default is used.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
		o.named = true
	}
}

// WithResolver replaces the home-based path resolver (alternate data dirs, tests).
func WithResolver(r *paths.Resolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// noteOptions holds the configuration for AddNote and NotePath.
type noteOptions struct {
	folder    string
	hasFolder bool
}

// NoteOption configures note addressing.
type NoteOption func(*noteOptions)

// InFolder places the note inside a single-level folder of the working directory.
func InFolder(folder string) NoteOption {
	return func(o *noteOptions) {
		o.folder = folder
		o.hasFolder = true
	}
}
