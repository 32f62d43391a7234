package platform

import (
	"github.com/mm-notes/mm/pkg/config"
	"github.com/mm-notes/mm/pkg/editor"
	"github.com/mm-notes/mm/pkg/paths"
	"github.com/mm-notes/mm/pkg/repo"
)

// Resolver builds the path resolver for cfg, applying the dev sandbox if enabled.
func Resolver(cfg *config.Config, opts ...Option) *paths.Resolver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return resolver(cfg, o)
}

func resolver(cfg *config.Config, o *options) *paths.Resolver {
	r := cfg.Resolver()
	if cfg.DataDir == "" && o.devSafety && IsDevRun() {
		r.DataDir = DevDataDir()
		if o.logger != nil {
			o.logger.Warn("running in SAFE MODE (Dev/Test)", "data_dir", r.DataDir)
		}
	}
	return r
}

// Open opens or creates the repository selected by opts: an explicit name wins,
// then the repository containing the working directory, then the configured default.
func Open(cfg *config.Config, opts ...Option) (*repo.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	r := resolver(cfg, o)
	ropts := []repo.Option{
		repo.WithResolver(r),
		repo.WithLogger(o.logger),
	}

	switch {
	case o.named:
		ropts = append(ropts, repo.WithName(o.name))
	case o.workingDir != "":
		if name, err := FindRepository(r, o.workingDir); err == nil {
			if o.logger != nil {
				o.logger.Debug("repository inferred from working directory", "repo", name)
			}
			ropts = append(ropts, repo.WithName(name))
		}
	}

	return repo.OpenOrCreate(ropts...)
}

// Editor returns the editor configured in cfg.
func Editor(cfg *config.Config, opts ...Option) editor.Editor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	e := editor.FromName(cfg.Editor)
	if p, ok := e.(*editor.Process); ok {
		p.Logger = o.logger
	}
	return e
}
