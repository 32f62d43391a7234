package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// DevDirName is the sandbox directory under os.TempDir used for dev runs.
const DevDirName = "mm-dev"

// IsDevRun checks if the current process is running via `go run` or `go test`.
// It relies on the fact that these commands build binaries in temporary directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	tempDir := os.TempDir()
	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(tempDir)) {
		return true
	}

	if strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe") {
		return true
	}

	return false
}

// DevDataDir is the data directory dev runs use instead of <home>/.mm.
func DevDataDir() string {
	return filepath.Join(os.TempDir(), DevDirName)
}
