package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// WriteInputDir creates dir under base and fills it with the given files.
// It returns the directory path.
func WriteInputDir(t *testing.T, base, dir string, files map[string]string) string {
	t.Helper()

	full := filepath.Join(base, dir)
	if err := os.MkdirAll(full, 0755); err != nil {
		t.Fatalf("failed to create %s: %v", full, err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(full, name)
		if err := os.WriteFile(path, []byte(files[name]), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
	return full
}

// ReadFile returns the content of path, failing the test if it is missing
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
