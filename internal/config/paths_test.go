package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths(t *testing.T) {
	base := t.TempDir()
	abs := filepath.Join(t.TempDir(), "out.txt")

	p := NewPaths(base, JobConfig{
		InputDir:   "P1",
		Extension:  ".txt",
		OutputFile: abs,
		XLSXFile:   "reports/stats.xlsx",
		CSVFile:    "reports/stats.csv",
	})

	assert.Equal(t, filepath.Join(base, "P1"), p.InputDir)
	assert.Equal(t, abs, p.OutputFile, "absolute paths are kept")
	assert.Equal(t, filepath.Join(base, "reports", "stats.xlsx"), p.XLSXFile)
	assert.Equal(t, filepath.Join(base, "reports", "stats.csv"), p.CSVFile)
	assert.Equal(t, ".txt", p.Extension)
}

func TestNewPaths_NoExports(t *testing.T) {
	p := NewPaths("/base", Default().Statistics)
	assert.Empty(t, p.XLSXFile)
	assert.Empty(t, p.CSVFile)
}

func TestInputDirExists(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(base, "P1"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "P2"), []byte("not a dir"), 0644))

	assert.True(t, NewPaths(base, JobConfig{InputDir: "P1"}).InputDirExists())
	assert.False(t, NewPaths(base, JobConfig{InputDir: "P2"}).InputDirExists())
	assert.False(t, NewPaths(base, JobConfig{InputDir: "P3"}).InputDirExists())
}

func TestGetPaths(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	p, err := GetPaths(Default().WordCount)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "P3"), p.InputDir)
	assert.Equal(t, filepath.Join(wd, "WordCountResults.txt"), p.OutputFile)
}
