package platform

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mm-notes/mm/pkg/paths"
)

// FindRepository reports the name of the repository whose working tree contains
// startDir, i.e. the first path segment below <data-dir>/repos.
func FindRepository(r *paths.Resolver, startDir string) (string, error) {
	repos, ok := r.RepositoriesDirectory()
	if !ok {
		return "", fmt.Errorf("repositories folder not resolvable")
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(repos, abs)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is not inside a repository", startDir)
	}

	name, _, _ := strings.Cut(rel, string(filepath.Separator))
	return name, nil
}
