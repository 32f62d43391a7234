package repo

import (
	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Name         string   `json:"name"`
	WorkDir      string   `json:"work_dir,omitempty"`
	Remotes      []string `json:"remotes,omitempty"`
	RemotesKnown bool     `json:"remotes_known"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	wd, _ := r.git.WorkDir()
	remotes, known := r.Remotes()

	return RepositoryState{
		Name:         r.name,
		WorkDir:      wd,
		Remotes:      remotes,
		RemotesKnown: known,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
