// Package repo orchestrates note repositories: it locates or creates the
// version-controlled working tree for a name and adds notes and folders to it.
package repo

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mm-notes/mm/pkg/adapters/fs"
	"github.com/mm-notes/mm/pkg/core"
	"github.com/mm-notes/mm/pkg/git"
)

// Repository is one version-controlled note collection under <data-dir>/repos/<name>.
// It exclusively owns its git handle. Callers serialize concurrent use themselves.
type Repository struct {
	name    string
	git     *git.Client
	remotes []string
	logger  *slog.Logger
}

// OpenOrCreate returns the named repository (or the default one), initializing
// its working tree on first use. Calling it again for the same name reopens the
// existing tree without re-initializing it.
func OpenOrCreate(opts ...Option) (*Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	name := o.resolver.DefaultRepositoryName()
	if o.named {
		name = o.name
	}
	if err := core.EnsureValidRepositoryName(name); err != nil {
		return nil, err
	}

	reposDir, ok := o.resolver.RepositoriesDirectory()
	if !ok {
		return nil, core.NewError(core.CategoryOs, "cannot get repositories folder")
	}
	if !fs.Exists(reposDir) {
		if err := fs.CreateDirRecursive(reposDir); err != nil {
			return nil, err
		}
	}

	path, ok := o.resolver.RepositoryPath(name)
	if !ok {
		return nil, core.NewError(core.CategoryOs, "cannot get repository path")
	}
	if err := fs.CreateDirRecursive(path); err != nil {
		return nil, err
	}

	client, created, err := git.OpenOrInit(path, o.logger)
	if err != nil {
		return nil, core.GitError(err, "cannot open repository")
	}

	r := &Repository{
		name:   name,
		git:    client,
		logger: o.logger,
	}

	// Unknown remotes never block opening the repository.
	remotes, err := client.Remotes()
	switch {
	case err != nil:
		if o.logger != nil {
			o.logger.Warn("cannot list remotes", "repo", name, "error", err)
		}
	case len(remotes) > 0:
		r.remotes = remotes
	}

	if o.logger != nil {
		o.logger.Debug("repository ready", "repo", name, "path", path, "created", created)
	}

	return r, nil
}

// Name returns the repository name.
func (r *Repository) Name() string {
	return r.name
}

// Remotes returns the configured remote names. known is false when the
// repository has none or they could not be listed.
func (r *Repository) Remotes() (names []string, known bool) {
	if r.remotes == nil {
		return nil, false
	}
	return append([]string(nil), r.remotes...), true
}

// WorkDir returns the absolute working directory as reported by the backend.
func (r *Repository) WorkDir() (string, error) {
	wd, ok := r.git.WorkDir()
	if !ok {
		return "", core.NewError(core.CategoryGit, "cannot get working directory")
	}
	return wd, nil
}

// AddNote creates an empty note and stages it, returning its absolute path.
// The folder, if any, is created when missing. An existing note is never
// overwritten: the call fails with an Os error for which core.IsAlreadyExists
// holds. Notes matching ignore rules are created but not staged.
func (r *Repository) AddNote(name string, opts ...NoteOption) (string, error) {
	no := &noteOptions{}
	for _, opt := range opts {
		opt(no)
	}

	if no.hasFolder {
		if err := core.EnsureValidFolderName(no.folder); err != nil {
			return "", err
		}
	}
	if err := core.EnsureValidNoteName(name); err != nil {
		return "", err
	}

	workdir, err := r.WorkDir()
	if err != nil {
		return "", err
	}

	folderPath := workdir
	if no.hasFolder {
		folderPath = filepath.Join(workdir, no.folder)
		// workdir always exists, so one level is enough.
		if !fs.Exists(folderPath) {
			if err := fs.CreateDir(folderPath); err != nil {
				return "", err
			}
		}
	}

	notePath := filepath.Join(folderPath, name)
	if err := fs.CreateNewFile(notePath); err != nil {
		return "", err
	}

	rel, err := filepath.Rel(workdir, notePath)
	if err != nil {
		return "", core.OsError(err, "cannot resolve note path")
	}

	staged, err := r.git.Add(rel)
	if err != nil {
		return "", core.GitError(err, "cannot stage note")
	}

	if r.logger != nil {
		r.logger.Info("note added", "repo", r.name, "note", filepath.ToSlash(rel), "staged", staged)
	}

	return notePath, nil
}

// AddFolder creates a folder directly under the working directory. Git does not
// track empty directories, so nothing is staged.
func (r *Repository) AddFolder(name string) error {
	if err := core.EnsureValidFolderName(name); err != nil {
		return err
	}

	workdir, err := r.WorkDir()
	if err != nil {
		return err
	}

	if err := fs.CreateDir(filepath.Join(workdir, name)); err != nil {
		return err
	}

	if r.logger != nil {
		r.logger.Info("folder added", "repo", r.name, "folder", name)
	}
	return nil
}

// NotePath resolves the absolute path of an existing note.
func (r *Repository) NotePath(name string, opts ...NoteOption) (string, error) {
	no := &noteOptions{}
	for _, opt := range opts {
		opt(no)
	}

	if no.hasFolder {
		if err := core.EnsureValidFolderName(no.folder); err != nil {
			return "", err
		}
	}
	if err := core.EnsureValidNoteName(name); err != nil {
		return "", err
	}

	workdir, err := r.WorkDir()
	if err != nil {
		return "", err
	}

	notePath := filepath.Join(workdir, no.folder, name)
	info, err := os.Stat(notePath)
	if err != nil {
		return "", core.OsError(err, "cannot find note")
	}
	if info.IsDir() {
		return "", core.NewError(core.CategoryOs, "not a note: '"+name+"'")
	}
	return notePath, nil
}

// Staged returns the paths with changes pending in the index.
func (r *Repository) Staged() ([]string, error) {
	staged, err := r.git.Staged()
	if err != nil {
		return nil, core.GitError(err, "cannot read index")
	}
	return staged, nil
}

// Lock serializes mutating callers across processes. Release with the returned func.
func (r *Repository) Lock(ctx context.Context) (func(), error) {
	unlock, err := r.git.Lock(ctx)
	if err != nil {
		return nil, core.GitError(err, "cannot lock repository")
	}
	return unlock, nil
}
