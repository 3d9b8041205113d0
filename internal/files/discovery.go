package files

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"txtcli/internal/errors"
)

// FileInfo represents information about a discovered file. RelPath is the
// directory as it was passed to FindFiles joined with Name, the form shown
// in reports.
type FileInfo struct {
	Path    string
	RelPath string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery provides file discovery operations
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// FindFiles lists the regular files in dir whose name ends with ext,
// sorted by name. Matching on ext is case-insensitive. A missing or
// non-directory dir is an INPUT_UNAVAILABLE error.
func (d *Discovery) FindFiles(dir, ext string) ([]FileInfo, error) {
	// If dir is already absolute, use it directly
	fullPath := dir
	if !filepath.IsAbs(dir) {
		fullPath = filepath.Join(d.basePath, dir)
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, errors.NewInputUnavailableError(dir, err)
	}
	if !info.IsDir() {
		return nil, errors.NewInputUnavailableError(dir, nil).WithContext("reason", "not a directory")
	}

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, errors.NewInputUnavailableError(dir, err)
	}

	ext = strings.ToLower(ext)
	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(strings.ToLower(name), ext) {
			continue
		}

		f := FileInfo{
			Path:    filepath.Join(fullPath, name),
			RelPath: filepath.Join(dir, name),
			Name:    name,
		}
		if fi, err := entry.Info(); err == nil {
			f.Size = fi.Size()
			f.ModTime = fi.ModTime()
		} else {
			// removed between listing and stat; the read will report it
			slog.Debug("Could not stat file", slog.String("name", name), slog.String("error", err.Error()))
		}
		files = append(files, f)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}
