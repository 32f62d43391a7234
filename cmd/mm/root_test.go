package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mm-notes/mm/pkg/core"
	"github.com/mm-notes/mm/pkg/paths"
	"github.com/mm-notes/mm/pkg/repo"
)

func TestWithLock(t *testing.T) {
	prev := lockTimeout
	lockTimeout = 50 * time.Millisecond
	t.Cleanup(func() { lockTimeout = prev })

	r, err := repo.OpenOrCreate(repo.WithResolver(&paths.Resolver{DataDir: t.TempDir()}))
	require.NoError(t, err)
	wd, err := r.WorkDir()
	require.NoError(t, err)

	t.Run("Runs And Releases", func(t *testing.T) {
		ran := false
		require.NoError(t, withLock(r, func() error {
			ran = true
			return nil
		}))
		assert.True(t, ran)
		assert.NoFileExists(t, filepath.Join(wd, ".git", "mm.lock"))
	})

	t.Run("Stale Lock Times Out", func(t *testing.T) {
		lockPath := filepath.Join(wd, ".git", "mm.lock")
		require.NoError(t, os.WriteFile(lockPath, nil, 0o644))
		t.Cleanup(func() { os.Remove(lockPath) })

		ran := false
		err := withLock(r, func() error {
			ran = true
			return nil
		})
		require.Error(t, err)
		assert.False(t, ran)
		assert.Equal(t, core.CategoryGit, core.CategoryOf(err))
		assert.Contains(t, err.Error(), "mm.lock")
	})
}
