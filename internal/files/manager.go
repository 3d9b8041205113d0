package files

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"txtcli/internal/config"
	"txtcli/internal/errors"
)

// Manager provides file management operations
type Manager struct {
	paths *config.Paths
}

// NewManager creates a new file manager instance
func NewManager(paths *config.Paths) *Manager {
	return &Manager{paths: paths}
}

// Paths returns the resolved paths the manager works with
func (m *Manager) Paths() *config.Paths {
	return m.paths
}

// FileExists checks if a file exists at the given path
func (m *Manager) FileExists(path string) bool {
	fullPath := m.resolvePath(path)
	_, err := os.Stat(fullPath)
	exists := err == nil

	slog.Debug("FileExists check",
		slog.String("path", path),
		slog.String("full_path", fullPath),
		slog.Bool("exists", exists))

	return exists
}

// EnsureDirectory creates a directory if it doesn't exist
func (m *Manager) EnsureDirectory(path string) error {
	fullPath := m.resolvePath(path)

	slog.Debug("Ensuring directory exists",
		slog.String("path", path),
		slog.String("full_path", fullPath))

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return os.MkdirAll(fullPath, 0755)
	}
	return nil
}

// CreateOutput creates (or truncates) a report file, creating parent
// directories as needed. Failures are OUTPUT errors.
func (m *Manager) CreateOutput(path string) (*os.File, error) {
	fullPath := m.resolvePath(path)

	slog.Debug("Creating output file",
		slog.String("path", path),
		slog.String("full_path", fullPath))

	if err := m.EnsureDirectory(filepath.Dir(fullPath)); err != nil {
		return nil, errors.NewOutputError(fmt.Sprintf("failed to create directory for %s", fullPath), err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return nil, errors.NewOutputError(fmt.Sprintf("failed to create %s", fullPath), err)
	}
	return f, nil
}

// WriteFile writes data to a file in one go
func (m *Manager) WriteFile(path string, data []byte) error {
	fullPath := m.resolvePath(path)

	slog.Debug("Writing file",
		slog.String("path", path),
		slog.String("full_path", fullPath),
		slog.Int("size_bytes", len(data)))

	if err := m.EnsureDirectory(filepath.Dir(fullPath)); err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to create directory for %s", fullPath), err)
	}

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to write %s", fullPath), err)
	}
	return nil
}

// resolvePath resolves a relative path against the base directory
func (m *Manager) resolvePath(path string) string {
	if filepath.IsAbs(path) || m.paths == nil {
		return path
	}
	return filepath.Join(m.paths.BaseDir, path)
}
