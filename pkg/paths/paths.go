// Package paths resolves where mm keeps its data on disk.
//
// Layout:
//
//	<home>/.mm/
//	  repos/
//	    <repository-name>/
package paths

import (
	"os"
	"path/filepath"
)

const (
	// DataFolder is the data directory relative to the user's home.
	DataFolder = ".mm"
	// ReposFolder is the repositories directory relative to the data directory.
	ReposFolder = "repos"
	// DefaultRepositoryName names the repository used when the caller does not pick one.
	DefaultRepositoryName = "mm_main_local"
)

// Resolver computes data paths. The zero value is not usable; see NewResolver.
type Resolver struct {
	// DataDir overrides the home-relative data directory when set.
	DataDir string
	// HomeDir looks up the user's home directory.
	HomeDir func() (string, error)
	// DefaultName is the repository addressed by DefaultRepositoryPath.
	DefaultName string
}

// NewResolver returns a Resolver rooted at the user's home directory.
func NewResolver() *Resolver {
	return &Resolver{
		HomeDir:     os.UserHomeDir,
		DefaultName: DefaultRepositoryName,
	}
}

// DataDirectory returns the absolute data directory, or false if it cannot be determined.
func (r *Resolver) DataDirectory() (string, bool) {
	if r.DataDir != "" {
		abs, err := filepath.Abs(r.DataDir)
		if err != nil {
			return "", false
		}
		return abs, true
	}

	if r.HomeDir == nil {
		return "", false
	}
	home, err := r.HomeDir()
	if err != nil || home == "" {
		return "", false
	}
	return filepath.Join(home, DataFolder), true
}

// RepositoriesDirectory returns <data-dir>/repos.
func (r *Resolver) RepositoriesDirectory() (string, bool) {
	data, ok := r.DataDirectory()
	if !ok {
		return "", false
	}
	return filepath.Join(data, ReposFolder), true
}

// RepositoryPath returns the working tree path of the named repository.
func (r *Resolver) RepositoryPath(name string) (string, bool) {
	repos, ok := r.RepositoriesDirectory()
	if !ok {
		return "", false
	}
	return filepath.Join(repos, name), true
}

// DefaultRepositoryPath returns the working tree path of the default repository.
func (r *Resolver) DefaultRepositoryPath() (string, bool) {
	return r.RepositoryPath(r.DefaultRepositoryName())
}

// DefaultRepositoryName returns the configured default, falling back to DefaultRepositoryName.
func (r *Resolver) DefaultRepositoryName() string {
	if r.DefaultName == "" {
		return DefaultRepositoryName
	}
	return r.DefaultName
}
