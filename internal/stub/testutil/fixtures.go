package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempDir creates a temporary directory populated with the given files,
// keyed by relative path. The directory is removed when the test finishes.
func TempDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for name, content := range files {
		path := filepath.Join(dir, name)

		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("Failed to create fixture directory for %s: %v", name, err)
		}

		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("Failed to write fixture %s: %v", name, err)
		}
	}

	return dir
}
