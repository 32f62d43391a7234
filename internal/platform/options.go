package platform

import (
	"log/slog"
)

// options holds the composition settings for Open.
type options struct {
	logger     *slog.Logger
	name       string
	named      bool
	workingDir string
	devSafety  bool
}

// Option defines a functional option for configuring Open.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		devSafety: true,
	}
}

// WithLogger sets the logger handed to the repository and editor.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository addresses a repository by name, overriding inference and the default.
func WithRepository(name string) Option {
	return func(o *options) {
		o.name = name
		o.named = true
	}
}

// WithWorkingDir lets Open infer the repository when dir lies inside one.
func WithWorkingDir(dir string) Option {
	return func(o *options) {
		o.workingDir = dir
	}
}

// WithDevSafety controls the sandbox used when running via `go run` or `go test`.
// By default (true) such runs keep their data in a temporary directory unless a
// data directory was configured explicitly.
//
// CAUTION: Only disable this if you are sure your code is safe.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}
