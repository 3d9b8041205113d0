package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains the resolved locations used by one utility run.
// Relative entries of a JobConfig are resolved against BaseDir.
type Paths struct {
	BaseDir    string
	InputDir   string
	Extension  string
	OutputFile string
	XLSXFile   string
	CSVFile    string
}

// NewPaths resolves job paths against baseDir
func NewPaths(baseDir string, job JobConfig) *Paths {
	p := &Paths{BaseDir: baseDir, Extension: job.Extension}
	p.InputDir = p.resolve(job.InputDir)
	p.OutputFile = p.resolve(job.OutputFile)
	if job.XLSXFile != "" {
		p.XLSXFile = p.resolve(job.XLSXFile)
	}
	if job.CSVFile != "" {
		p.CSVFile = p.resolve(job.CSVFile)
	}
	return p
}

// GetPaths resolves job paths against the current working directory
func GetPaths(job JobConfig) (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewPaths(wd, job), nil
}

func (p *Paths) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.BaseDir, path)
}

// InputDirExists reports whether the input directory exists and is a directory
func (p *Paths) InputDirExists() bool {
	info, err := os.Stat(p.InputDir)
	return err == nil && info.IsDir()
}

// LogPathResolution logs the resolved paths for debugging
func (p *Paths) LogPathResolution(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Debug("Path resolution summary",
		slog.String("base_dir", p.BaseDir),
		slog.String("input_dir", p.InputDir),
		slog.String("extension", p.Extension),
		slog.String("output_file", p.OutputFile),
		slog.String("xlsx_file", p.XLSXFile),
		slog.String("csv_file", p.CSVFile))
}
