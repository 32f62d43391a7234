package repo_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mm-notes/mm/pkg/core"
	"github.com/mm-notes/mm/pkg/git"
	"github.com/mm-notes/mm/pkg/paths"
	"github.com/mm-notes/mm/pkg/repo"
)

func testResolver(t *testing.T) *paths.Resolver {
	t.Helper()
	return &paths.Resolver{
		DataDir:     filepath.Join(t.TempDir(), ".mm"),
		DefaultName: paths.DefaultRepositoryName,
	}
}

func openRepo(t *testing.T, resolver *paths.Resolver, opts ...repo.Option) *repo.Repository {
	t.Helper()
	r, err := repo.OpenOrCreate(append([]repo.Option{repo.WithResolver(resolver)}, opts...)...)
	require.NoError(t, err)
	return r
}

func workDir(t *testing.T, r *repo.Repository) string {
	t.Helper()
	wd, err := r.WorkDir()
	require.NoError(t, err)
	return wd
}

func isStaged(t *testing.T, wd, rel string) bool {
	t.Helper()
	client, err := git.Open(wd, nil)
	require.NoError(t, err)
	staged, err := client.IsStaged(rel)
	require.NoError(t, err)
	return staged
}

func TestOpenOrCreate(t *testing.T) {
	t.Run("Creates Layout", func(t *testing.T) {
		resolver := testResolver(t)
		r := openRepo(t, resolver, repo.WithName("work"))

		assert.Equal(t, "work", r.Name())
		want, _ := resolver.RepositoryPath("work")
		assert.Equal(t, want, workDir(t, r))

		info, err := os.Stat(filepath.Join(want, ".git"))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("Is Idempotent", func(t *testing.T) {
		resolver := testResolver(t)
		first := openRepo(t, resolver, repo.WithName("work"))
		note, err := first.AddNote("x")
		require.NoError(t, err)

		second := openRepo(t, resolver, repo.WithName("work"))
		assert.Equal(t, workDir(t, first), workDir(t, second))

		// The earlier staging survives the reopen.
		assert.FileExists(t, note)
		assert.True(t, isStaged(t, workDir(t, second), "x"))
	})

	t.Run("Default Name Addresses Main Repository", func(t *testing.T) {
		resolver := testResolver(t)
		implicit := openRepo(t, resolver)
		explicit := openRepo(t, resolver, repo.WithName("mm_main_local"))

		assert.Equal(t, paths.DefaultRepositoryName, implicit.Name())
		assert.Equal(t, implicit.Name(), explicit.Name())
		assert.Equal(t, workDir(t, implicit), workDir(t, explicit))
	})

	t.Run("Configured Default Name", func(t *testing.T) {
		resolver := testResolver(t)
		resolver.DefaultName = "scratch"

		r := openRepo(t, resolver)
		assert.Equal(t, "scratch", r.Name())
	})

	t.Run("Unresolvable Data Directory", func(t *testing.T) {
		resolver := &paths.Resolver{HomeDir: func() (string, error) { return "", errors.New("no home") }}

		_, err := repo.OpenOrCreate(repo.WithResolver(resolver))
		require.Error(t, err)
		assert.Equal(t, core.CategoryOs, core.CategoryOf(err))
	})

	t.Run("Invalid Name", func(t *testing.T) {
		for _, name := range []string{"", "a/b", ".."} {
			_, err := repo.OpenOrCreate(repo.WithResolver(testResolver(t)), repo.WithName(name))
			require.Error(t, err, name)
			assert.Equal(t, core.CategoryRepo, core.CategoryOf(err), name)
		}
	})

	t.Run("Invalid Default Name", func(t *testing.T) {
		resolver := testResolver(t)
		resolver.DefaultName = "../x"

		_, err := repo.OpenOrCreate(repo.WithResolver(resolver))
		require.Error(t, err)
		assert.Equal(t, core.CategoryRepo, core.CategoryOf(err))

		data, ok := resolver.DataDirectory()
		require.True(t, ok)
		assert.NoDirExists(t, filepath.Join(data, "x"))
	})

	t.Run("Corrupt Repository Is Not Reinitialized", func(t *testing.T) {
		resolver := testResolver(t)
		path, _ := resolver.RepositoryPath("broken")
		require.NoError(t, os.MkdirAll(path, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(path, ".git"), []byte("not a gitdir"), 0o644))

		_, err := repo.OpenOrCreate(repo.WithResolver(resolver), repo.WithName("broken"))
		require.Error(t, err)
		assert.Equal(t, core.CategoryGit, core.CategoryOf(err))

		info, err := os.Stat(filepath.Join(path, ".git"))
		require.NoError(t, err)
		assert.False(t, info.IsDir())
	})

	t.Run("Remotes", func(t *testing.T) {
		resolver := testResolver(t)
		r := openRepo(t, resolver)

		_, known := r.Remotes()
		assert.False(t, known)

		client, err := git.Open(workDir(t, r), nil)
		require.NoError(t, err)
		_, err = client.Repository().CreateRemote(&config.RemoteConfig{
			Name: "origin",
			URLs: []string{"https://example.com/notes.git"},
		})
		require.NoError(t, err)

		reopened := openRepo(t, resolver)
		names, known := reopened.Remotes()
		assert.True(t, known)
		assert.Equal(t, []string{"origin"}, names)
	})
}

func TestAddNote(t *testing.T) {
	t.Run("Root Note Is Created And Staged", func(t *testing.T) {
		r := openRepo(t, testResolver(t))
		wd := workDir(t, r)

		note, err := r.AddNote("x")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(wd, "x"), note)
		assert.FileExists(t, note)
		assert.True(t, isStaged(t, wd, "x"))

		staged, err := r.Staged()
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, staged)
	})

	t.Run("Duplicate Fails And Keeps Original", func(t *testing.T) {
		r := openRepo(t, testResolver(t))

		note, err := r.AddNote("x")
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(note, []byte("original"), 0o644))

		_, err = r.AddNote("x")
		require.Error(t, err)
		assert.Equal(t, core.CategoryOs, core.CategoryOf(err))
		assert.True(t, core.IsAlreadyExists(err))

		got, err := os.ReadFile(note)
		require.NoError(t, err)
		assert.Equal(t, "original", string(got))
	})

	t.Run("Folder Is Created On Demand", func(t *testing.T) {
		r := openRepo(t, testResolver(t))
		wd := workDir(t, r)

		note, err := r.AddNote("x", repo.InFolder("notes"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(wd, "notes", "x"), note)
		assert.DirExists(t, filepath.Join(wd, "notes"))
		assert.True(t, isStaged(t, wd, "notes/x"))

		// Existing folder is reused.
		_, err = r.AddNote("y", repo.InFolder("notes"))
		require.NoError(t, err)
	})

	t.Run("Same Name In Different Folders", func(t *testing.T) {
		r := openRepo(t, testResolver(t))

		_, err := r.AddNote("x")
		require.NoError(t, err)
		_, err = r.AddNote("x", repo.InFolder("notes"))
		require.NoError(t, err)
	})

	t.Run("Invalid Folder Touches Nothing", func(t *testing.T) {
		r := openRepo(t, testResolver(t))
		wd := workDir(t, r)

		for _, folder := range []string{"", "a/b", `a\b`} {
			_, err := r.AddNote("x", repo.InFolder(folder))
			require.Error(t, err)
			assert.Equal(t, core.CategoryRepo, core.CategoryOf(err))
			assert.ErrorIs(t, err, core.ErrInvalidName)
		}
		assert.NoFileExists(t, filepath.Join(wd, "x"))
		assert.NoDirExists(t, filepath.Join(wd, "a"))
	})

	t.Run("Invalid Note Name", func(t *testing.T) {
		r := openRepo(t, testResolver(t))

		_, err := r.AddNote("a/b")
		require.Error(t, err)
		assert.Equal(t, core.CategoryRepo, core.CategoryOf(err))
	})

	t.Run("Ignored Note Is Created But Not Staged", func(t *testing.T) {
		r := openRepo(t, testResolver(t))
		wd := workDir(t, r)
		require.NoError(t, os.WriteFile(filepath.Join(wd, ".gitignore"), []byte("*.secret\n"), 0o644))

		note, err := r.AddNote("keys.secret")
		require.NoError(t, err)
		assert.FileExists(t, note)
		assert.False(t, isStaged(t, wd, "keys.secret"))

		staged, err := r.Staged()
		require.NoError(t, err)
		assert.NotContains(t, staged, "keys.secret")
	})

	t.Run("Folder Path Occupied By File", func(t *testing.T) {
		r := openRepo(t, testResolver(t))

		_, err := r.AddNote("notes")
		require.NoError(t, err)

		_, err = r.AddNote("x", repo.InFolder("notes"))
		require.Error(t, err)
		assert.Equal(t, core.CategoryOs, core.CategoryOf(err))
	})
}

func TestAddFolder(t *testing.T) {
	r := openRepo(t, testResolver(t))
	wd := workDir(t, r)

	require.NoError(t, r.AddFolder("notes"))
	assert.DirExists(t, filepath.Join(wd, "notes"))

	err := r.AddFolder("notes")
	require.Error(t, err)
	assert.Equal(t, core.CategoryOs, core.CategoryOf(err))
	assert.True(t, core.IsAlreadyExists(err))

	for _, name := range []string{"", "a/b", `a\b`, "."} {
		err := r.AddFolder(name)
		require.Error(t, err, name)
		assert.Equal(t, core.CategoryRepo, core.CategoryOf(err), name)
	}

	// Empty folders are never staged.
	staged, err := r.Staged()
	require.NoError(t, err)
	assert.Empty(t, staged)
}

func TestNotePath(t *testing.T) {
	r := openRepo(t, testResolver(t))

	created, err := r.AddNote("x", repo.InFolder("notes"))
	require.NoError(t, err)

	got, err := r.NotePath("x", repo.InFolder("notes"))
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = r.NotePath("missing")
	require.Error(t, err)
	assert.Equal(t, core.CategoryOs, core.CategoryOf(err))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = r.NotePath("notes")
	require.Error(t, err)
	assert.Equal(t, core.CategoryOs, core.CategoryOf(err))

	_, err = r.NotePath("x", repo.InFolder("a/b"))
	assert.Equal(t, core.CategoryRepo, core.CategoryOf(err))
}
