package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"txtcli/internal/batch"
	"txtcli/internal/config"
	"txtcli/internal/errors"
	"txtcli/internal/infrastructure"
	"txtcli/internal/shared/testutil"
)

// setupEnv points logging at a temporary file so runs stay quiet
func setupEnv(t *testing.T) string {
	t.Helper()

	base := t.TempDir()
	t.Setenv("TXT_LOGGING_OUTPUT", "file")
	t.Setenv("TXT_LOGGING_FILE_PATH", filepath.Join(base, "logs", "txtcli.log"))

	infrastructure.ResetLoggerForTesting()
	t.Cleanup(infrastructure.ResetLoggerForTesting)
	return base
}

func TestMain_Statistics(t *testing.T) {
	base := setupEnv(t)
	dir := testutil.WriteInputDir(t, base, "P1", map[string]string{
		"a.txt": "1\n2\n2\n3\n",
		"b.txt": "x\n",
	})
	out := filepath.Join(base, "StatisticsResults.txt")

	var stdout, stderr bytes.Buffer
	code := Main(batch.JobStatistics, []string{"-dir", dir, "-out", out}, &stdout, &stderr)

	require.Equal(t, ExitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "Results written to "+out)
	assert.Contains(t, stdout.String(), "Encountered invalid lines:")
	assert.Contains(t, stdout.String(), "Total execution time:")
	assert.Contains(t, testutil.ReadFile(t, out), "Total Time")

	logs := testutil.ReadFile(t, filepath.Join(base, "logs", "txtcli.log"))
	assert.Contains(t, logs, `"run_id"`)
	assert.Contains(t, logs, "Batch run completed")
}

func TestMain_Conversion(t *testing.T) {
	base := setupEnv(t)
	dir := testutil.WriteInputDir(t, base, "P2", map[string]string{"n.txt": "10\n-10\n"})
	out := filepath.Join(base, "ConversionResults.txt")

	var stdout, stderr bytes.Buffer
	code := Main(batch.JobConversion, []string{"-dir", dir, "-out", out}, &stdout, &stderr)

	require.Equal(t, ExitOK, code, stderr.String())
	report := testutil.ReadFile(t, out)
	assert.Contains(t, report, "Binary: 1010")
	assert.Contains(t, report, "Hexadecimal: -A")
	assert.Contains(t, stdout.String(), "Binary: -1010")
}

func TestMain_WordCountCustomExtension(t *testing.T) {
	base := setupEnv(t)
	dir := testutil.WriteInputDir(t, base, "P3", map[string]string{
		"a.md":  "Go go GO\n",
		"b.txt": "ignored\n",
	})
	out := filepath.Join(base, "WordCountResults.txt")

	var stdout, stderr bytes.Buffer
	code := Main(batch.JobWordCount, []string{"-dir", dir, "-ext", ".md", "-out", out}, &stdout, &stderr)

	require.Equal(t, ExitOK, code, stderr.String())
	report := testutil.ReadFile(t, out)
	assert.Contains(t, report, "go: 3")
	assert.NotContains(t, report, "ignored")
}

func TestMain_MissingDirectory(t *testing.T) {
	for _, name := range []string{batch.JobStatistics, batch.JobConversion, batch.JobWordCount} {
		t.Run(name, func(t *testing.T) {
			base := setupEnv(t)
			missing := filepath.Join(base, "nope")
			out := filepath.Join(base, "results.txt")

			var stdout, stderr bytes.Buffer
			code := Main(name, []string{"-dir", missing, "-out", out}, &stdout, &stderr)

			assert.Equal(t, ExitError, code)
			assert.Equal(t, "Invalid folder path: "+missing+"\n", stderr.String())
			assert.NoFileExists(t, out)
			assert.Contains(t, testutil.ReadFile(t, filepath.Join(base, "logs", "txtcli.log")), "Utility failed")
		})
	}
}

func TestMain_Flags(t *testing.T) {
	setupEnv(t)

	var stdout, stderr bytes.Buffer
	assert.Equal(t, ExitOK, Main(batch.JobStatistics, []string{"-version"}, &stdout, &stderr))
	assert.True(t, strings.HasPrefix(stdout.String(), "statistics v"))

	stdout.Reset()
	assert.Equal(t, ExitUsage, Main(batch.JobStatistics, []string{"-bogus"}, &stdout, &stderr))
	assert.Equal(t, ExitOK, Main(batch.JobStatistics, []string{"-h"}, &stdout, &stderr))
}

func TestMain_ConfigError(t *testing.T) {
	setupEnv(t)

	var stdout, stderr bytes.Buffer
	code := Main(batch.JobStatistics, []string{"-config", filepath.Join(t.TempDir(), "absent.yaml")}, &stdout, &stderr)

	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr.String(), "CONFIG")
}

func TestApplication_JobConfig(t *testing.T) {
	a := &Application{Config: config.Default()}

	job, err := a.JobConfig(batch.JobConversion, Overrides{OutputFile: "custom.txt"})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConversionDir, job.InputDir)
	assert.Equal(t, config.DefaultExtension, job.Extension)
	assert.Equal(t, "custom.txt", job.OutputFile)

	job, err = a.JobConfig(batch.JobWordCount, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultWordCountOutput, job.OutputFile)

	_, err = a.JobConfig("histogram", Overrides{})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeConfig))
}

func TestApplication_RunJobRelativePaths(t *testing.T) {
	base := setupEnv(t)
	testutil.WriteInputDir(t, base, "P1", map[string]string{"a.txt": "4\n"})

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(base))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg := config.Default()
	cfg.Logging.Output = "file"
	cfg.Logging.FilePath = filepath.Join(base, "logs", "txtcli.log")

	a, err := New(cfg)
	require.NoError(t, err)
	defer a.Shutdown(context.Background())

	var console bytes.Buffer
	summary, err := a.RunJob(context.Background(), batch.JobStatistics, Overrides{}, &console)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, config.DefaultStatisticsOutput), summary.Output)
	assert.FileExists(t, filepath.Join(base, config.DefaultStatisticsOutput))
	assert.Contains(t, console.String(), "a.txt")
}
