package git

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/go-git/go-git/v5/plumbing/format/index"
)

const (
	lockFile     = "mm.lock"
	lockInterval = 10 * time.Millisecond
)

// Client owns an opened git repository and exposes the operations mm needs from it.
type Client struct {
	Logger *slog.Logger
	repo   *gogit.Repository
	path   string
}

func newClient(repo *gogit.Repository, path string, logger *slog.Logger) *Client {
	return &Client{
		Logger: logger,
		repo:   repo,
		path:   path,
	}
}

// Open opens the repository at path. A missing repository is reported as
// gogit.ErrRepositoryNotExists.
func Open(path string, logger *slog.Logger) (*Client, error) {
	r, err := gogit.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", path, err)
	}
	return newClient(r, path, logger), nil
}

// Init creates a new non-bare repository at path.
func Init(path string, logger *slog.Logger) (*Client, error) {
	if logger != nil {
		logger.Debug("initializing git repository", "path", path)
	}
	r, err := gogit.PlainInit(path, false)
	if err != nil {
		return nil, fmt.Errorf("init repository %s: %w", path, err)
	}
	return newClient(r, path, logger), nil
}

// OpenOrInit opens the repository at path, initializing it only when none exists.
// Other open failures (corrupt metadata, permissions) are returned unchanged rather
// than masked by a re-init. created reports whether Init ran.
func OpenOrInit(path string, logger *slog.Logger) (c *Client, created bool, err error) {
	c, err = Open(path, logger)
	if err == nil {
		return c, false, nil
	}
	if !errors.Is(err, gogit.ErrRepositoryNotExists) {
		return nil, false, err
	}

	c, err = Init(path, logger)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}

// Repository exposes the underlying go-git handle.
func (c *Client) Repository() *gogit.Repository {
	return c.repo
}

// WorkDir returns the absolute working tree root. It is absent for bare repositories.
func (c *Client) WorkDir() (string, bool) {
	wt, err := c.repo.Worktree()
	if err != nil {
		return "", false
	}
	return wt.Filesystem.Root(), true
}

// Remotes returns the configured remote names, sorted.
func (c *Client) Remotes() ([]string, error) {
	remotes, err := c.repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("list remotes: %w", err)
	}

	names := make([]string, 0, len(remotes))
	for _, r := range remotes {
		names = append(names, r.Config().Name)
	}
	sort.Strings(names)
	return names, nil
}

// Add stages rel (relative to the working tree) unless it matches an ignore
// pattern, mirroring `git add` without --force. staged is false for ignored paths.
func (c *Client) Add(rel string) (staged bool, err error) {
	wt, err := c.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("get worktree: %w", err)
	}

	rel = filepath.ToSlash(filepath.Clean(rel))

	patterns, err := gitignore.ReadPatterns(wt.Filesystem, nil)
	if err != nil {
		return false, fmt.Errorf("read ignore patterns: %w", err)
	}
	patterns = append(patterns, wt.Excludes...)

	if gitignore.NewMatcher(patterns).Match(strings.Split(rel, "/"), false) {
		if c.Logger != nil {
			c.Logger.Debug("path ignored, not staging", "path", rel)
		}
		return false, nil
	}

	if err := c.ForceAdd(rel); err != nil {
		return false, err
	}
	return true, nil
}

// ForceAdd stages rel regardless of ignore rules.
func (c *Client) ForceAdd(rel string) error {
	wt, err := c.repo.Worktree()
	if err != nil {
		return fmt.Errorf("get worktree: %w", err)
	}

	rel = filepath.ToSlash(filepath.Clean(rel))
	if c.Logger != nil {
		c.Logger.Debug("staging", "path", rel, "dir", c.path)
	}

	if _, err := wt.Add(rel); err != nil {
		return fmt.Errorf("git add %s failed: %w", rel, err)
	}
	return nil
}

// IsStaged reports whether rel has an entry in the index.
func (c *Client) IsStaged(rel string) (bool, error) {
	idx, err := c.repo.Storer.Index()
	if err != nil {
		return false, fmt.Errorf("read index: %w", err)
	}

	if _, err := idx.Entry(filepath.ToSlash(filepath.Clean(rel))); err != nil {
		if errors.Is(err, index.ErrEntryNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Staged returns the paths with pending changes in the index, sorted.
func (c *Client) Staged() ([]string, error) {
	wt, err := c.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("get worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("git status failed: %w", err)
	}

	var paths []string
	for p, s := range status {
		if s.Staging != gogit.Unmodified && s.Staging != gogit.Untracked {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Lock acquires an advisory lock file inside the git directory, retrying until
// ctx is done. Callers that mutate the same repository from several processes
// use it to serialize themselves; the returned func releases the lock.
func (c *Client) Lock(ctx context.Context) (func(), error) {
	fullLockPath := filepath.Join(c.path, gogit.GitDirName, lockFile)

	ticker := time.NewTicker(lockInterval)
	defer ticker.Stop()

	for {
		f, err := os.OpenFile(fullLockPath, os.O_CREATE|os.O_EXCL, 0o666)
		if err == nil {
			f.Close()
			return func() {
				os.Remove(fullLockPath)
			}, nil
		}

		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to acquire lock: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("failed to acquire lock %s: %w", fullLockPath, ctx.Err())
		case <-ticker.C:
		}
	}
}
