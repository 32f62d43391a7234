package repo

import (
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/mm-notes/mm/pkg/core"
)

// DefaultListPattern matches every note in every folder.
const DefaultListPattern = "**"

// ListNotes returns the notes matching a doublestar pattern, as slash-separated
// paths relative to the working directory. Hidden entries (.git, .gitignore,
// temp files) are skipped. An empty pattern lists everything.
func (r *Repository) ListNotes(pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultListPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, core.NewError(core.CategoryRepo, "invalid pattern: '"+pattern+"'")
	}

	workdir, err := r.WorkDir()
	if err != nil {
		return nil, err
	}

	matches, err := doublestar.Glob(os.DirFS(workdir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, core.OsError(err, "cannot list notes")
	}

	notes := make([]string, 0, len(matches))
	for _, m := range matches {
		if hidden(m) {
			continue
		}
		notes = append(notes, m)
	}
	sort.Strings(notes)
	return notes, nil
}

func hidden(rel string) bool {
	for _, seg := range strings.Split(rel, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}
