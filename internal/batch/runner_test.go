package batch

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"txtcli/internal/baseconv"
	"txtcli/internal/config"
	"txtcli/internal/errors"
	"txtcli/internal/files"
	"txtcli/internal/infrastructure"
	"txtcli/internal/shared/testutil"
)

type fixture struct {
	base    string
	opts    Options
	manager *files.Manager
	console *bytes.Buffer
}

func newFixture(t *testing.T, dir, output string, inputs map[string]string) *fixture {
	t.Helper()

	base := t.TempDir()
	if inputs != nil {
		testutil.WriteInputDir(t, base, dir, inputs)
	}

	job := config.JobConfig{InputDir: dir, Extension: ".txt", OutputFile: output}
	paths := config.NewPaths(base, job)
	console := &bytes.Buffer{}

	return &fixture{
		base:    base,
		opts:    NewOptions(job, paths, console),
		manager: files.NewManager(paths),
		console: console,
	}
}

func (f *fixture) output(t *testing.T) string {
	return testutil.ReadFile(t, f.opts.OutputPath)
}

func TestRun_Statistics(t *testing.T) {
	f := newFixture(t, "P1", "StatisticsResults.txt", map[string]string{
		"a.txt": "1\n2\n2\n3\n",
		"b.txt": "abc\n",
		"c.txt": "5\nxyz\n",
	})
	logger, handler := testutil.NewTestLogger(t)

	job := NewStatisticsJob(f.opts, f.manager, logger)
	summary, err := NewRunner(f.opts, logger, nil, nil).Run(context.Background(), job)
	require.NoError(t, err)

	assert.Equal(t, JobStatistics, summary.Job)
	assert.Equal(t, 3, summary.Files)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, f.opts.OutputPath, summary.Output)

	records := job.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "a.txt", records[0].File)
	assert.Equal(t, 4, records[0].Count)
	assert.Equal(t, 0.71, records[0].StandardDeviation)
	assert.Equal(t, "c.txt", records[1].File)
	assert.Equal(t, 1, records[1].Count)

	lineSkips := summary.LineSkips()
	require.Len(t, lineSkips, 2)
	assert.Equal(t, filepath.Join("P1", "b.txt"), lineSkips[0].File)
	assert.Equal(t, 1, lineSkips[0].LineNumber)
	assert.Equal(t, "abc", lineSkips[0].Line)
	assert.Equal(t, string(errors.ErrTypeLineUnparseable), lineSkips[0].Kind)
	assert.Equal(t, 2, lineSkips[1].LineNumber)

	fileSkips := summary.FileSkips()
	require.Len(t, fileSkips, 1)
	assert.Equal(t, string(errors.ErrTypeEmptyResult), fileSkips[0].Kind)

	report := f.output(t)
	assert.Contains(t, report, "a.txt")
	assert.Contains(t, report, "c.txt")
	assert.NotContains(t, report, "b.txt")
	assert.Contains(t, report, "Total Time")
	assert.Contains(t, f.console.String(), "Standard Deviation")
	assert.NotContains(t, f.console.String(), "Total Time")

	testutil.AssertLogContains(t, handler, slog.LevelWarn, "Skipping line")
	testutil.AssertLogContains(t, handler, slog.LevelWarn, "Skipping file")
	assert.Equal(t, 2, handler.CountMessage("Skipping line"))
	assert.Equal(t, 1, handler.CountMessage("Skipping file"))
	testutil.AssertLogAttr(t, handler, "component", "batch")
	testutil.AssertNoErrors(t, handler)
}

func TestRun_StatisticsWithoutValidData(t *testing.T) {
	f := newFixture(t, "P1", "StatisticsResults.txt", map[string]string{
		"a.txt": "x\ny\n",
		"b.txt": "",
	})
	logger, handler := testutil.NewTestLogger(t)

	summary, err := NewRunner(f.opts, logger, nil, nil).Run(context.Background(), NewStatisticsJob(f.opts, f.manager, logger))
	require.NoError(t, err)

	assert.Empty(t, summary.Output)
	assert.Equal(t, 0, summary.Processed)
	assert.Len(t, summary.FileSkips(), 2)
	assert.NoFileExists(t, f.opts.OutputPath)
	testutil.AssertLogContains(t, handler, slog.LevelWarn, "no results written")
}

func TestRun_StatisticsExports(t *testing.T) {
	f := newFixture(t, "P1", "StatisticsResults.txt", map[string]string{"a.txt": "1\n2\n"})
	f.opts.XLSXPath = filepath.Join(f.base, "exports", "stats.xlsx")
	f.opts.CSVPath = filepath.Join(f.base, "exports", "stats.csv")
	logger, _ := testutil.NewTestLogger(t)

	_, err := NewRunner(f.opts, logger, nil, nil).Run(context.Background(), NewStatisticsJob(f.opts, f.manager, logger))
	require.NoError(t, err)

	assert.FileExists(t, f.opts.XLSXPath)
	assert.Contains(t, testutil.ReadFile(t, f.opts.CSVPath), "a.txt,2,2,1.5,1.5,1,0.25,0.5,")
}

func TestRun_Conversion(t *testing.T) {
	f := newFixture(t, "P2", "ConversionResults.txt", map[string]string{
		"b.txt": "10\n-10\nfoo\n0\n",
		"a.txt": "255\n",
	})
	logger, _ := testutil.NewTestLogger(t)

	summary, err := NewRunner(f.opts, logger, nil, nil).Run(context.Background(), NewConversionJob(f.opts, f.manager))
	require.NoError(t, err)

	want := strings.Join([]string{
		"",
		"Converting numbers in file: " + filepath.Join("P2", "a.txt"),
		"Number: 255     Binary: 11111111     Hexadecimal: FF",
		"",
		"Converting numbers in file: " + filepath.Join("P2", "b.txt"),
		baseconv.Format(baseconv.Convert(10)),
		baseconv.Format(baseconv.Convert(-10)),
		"Number: 0       Binary: 0            Hexadecimal: 0",
		"",
	}, "\n")
	assert.Equal(t, want, f.output(t))
	assert.Equal(t, want, f.console.String())

	assert.Equal(t, 2, summary.Processed)
	require.Len(t, summary.Skips, 1)
	assert.Equal(t, "foo", summary.Skips[0].Line)
	assert.Equal(t, 3, summary.Skips[0].LineNumber)
	assert.Equal(t, f.opts.OutputPath, summary.Output)
}

func TestRun_WordCount(t *testing.T) {
	f := newFixture(t, "P3", "WordCountResults.txt", map[string]string{
		"story.txt": "The cat. The dog!\n",
		"empty.txt": "",
	})
	logger, _ := testutil.NewTestLogger(t)

	summary, err := NewRunner(f.opts, logger, nil, nil).Run(context.Background(), NewWordCountJob(f.opts, f.manager))
	require.NoError(t, err)

	want := "\nWord frequency in file: " + filepath.Join("P3", "empty.txt") + "\n" +
		"\nWord frequency in file: " + filepath.Join("P3", "story.txt") + "\n" +
		"the: 2\ncat: 1\ndog: 1\n"
	assert.Equal(t, want, f.output(t))
	assert.Equal(t, 2, summary.Processed)
	assert.Empty(t, summary.Skips)
}

func TestRun_InputUnavailable(t *testing.T) {
	tests := []struct {
		name   string
		output string
		job    func(f *fixture, logger *slog.Logger) Job
	}{
		{
			name:   "statistics",
			output: "StatisticsResults.txt",
			job:    func(f *fixture, l *slog.Logger) Job { return NewStatisticsJob(f.opts, f.manager, l) },
		},
		{
			name:   "conversion",
			output: "ConversionResults.txt",
			job:    func(f *fixture, _ *slog.Logger) Job { return NewConversionJob(f.opts, f.manager) },
		},
		{
			name:   "wordcount",
			output: "WordCountResults.txt",
			job:    func(f *fixture, _ *slog.Logger) Job { return NewWordCountJob(f.opts, f.manager) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "missing", tt.output, nil)
			logger, handler := testutil.NewTestLogger(t)

			summary, err := NewRunner(f.opts, logger, nil, nil).Run(context.Background(), tt.job(f, logger))
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrTypeInputUnavailable))
			assert.True(t, errors.Fatal(err))
			assert.Contains(t, err.Error(), "Invalid folder path: missing")
			assert.Empty(t, summary.Output)
			assert.NoFileExists(t, f.opts.OutputPath)
			testutil.AssertLogContains(t, handler, slog.LevelError, "Input directory unavailable")
		})
	}
}

func TestRun_UnreadableFileIsSkipped(t *testing.T) {
	f := newFixture(t, "P3", "WordCountResults.txt", map[string]string{
		"a.txt": "hello\n",
		"b.txt": "caf\xe9\n",
		"c.txt": "world\n",
	})
	logger, _ := testutil.NewTestLogger(t)

	summary, err := NewRunner(f.opts, logger, nil, nil).Run(context.Background(), NewWordCountJob(f.opts, f.manager))
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Files)
	assert.Equal(t, 2, summary.Processed)
	require.Len(t, summary.FileSkips(), 1)
	assert.Equal(t, string(errors.ErrTypeFileUnreadable), summary.Skips[0].Kind)
	assert.Equal(t, files.ErrInvalidEncoding.Error(), summary.Skips[0].Reason)

	out := f.output(t)
	assert.Contains(t, out, "hello: 1")
	assert.Contains(t, out, "world: 1")
	assert.NotContains(t, out, "b.txt")
}

func TestRun_CancelledContext(t *testing.T) {
	f := newFixture(t, "P2", "ConversionResults.txt", map[string]string{"a.txt": "1\n"})
	logger, _ := testutil.NewTestLogger(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := NewRunner(f.opts, logger, nil, nil).Run(ctx, NewConversionJob(f.opts, f.manager))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, summary.Processed)
	assert.Empty(t, summary.Output)
}

func TestRun_Idempotent(t *testing.T) {
	f := newFixture(t, "P2", "ConversionResults.txt", map[string]string{
		"a.txt": "7\n-8\nbad\n",
		"b.txt": "9223372036854775807\n",
	})
	logger, _ := testutil.NewTestLogger(t)

	run := func() string {
		_, err := NewRunner(f.opts, logger, nil, nil).Run(context.Background(), NewConversionJob(f.opts, f.manager))
		require.NoError(t, err)
		return f.output(t)
	}

	assert.Equal(t, run(), run())
}

func TestRun_Spans(t *testing.T) {
	f := newFixture(t, "P1", "StatisticsResults.txt", map[string]string{
		"a.txt": "1\n",
		"b.txt": "2\n",
	})
	logger, _ := testutil.NewTestLogger(t)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer tp.Shutdown(context.Background())

	_, err := NewRunner(f.opts, logger, tp.Tracer(TracerName), nil).Run(context.Background(), NewStatisticsJob(f.opts, f.manager, logger))
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 3)

	var fileSpans int
	var run sdktrace.ReadOnlySpan
	for _, s := range spans {
		switch s.Name() {
		case "batch.file":
			fileSpans++
		case "batch.run":
			run = s
		}
	}
	assert.Equal(t, 2, fileSpans)
	require.NotNil(t, run)
	for _, s := range spans {
		if s.Name() == "batch.file" {
			assert.Equal(t, run.SpanContext().SpanID(), s.Parent().SpanID())
		}
	}
}

func TestRun_Metrics(t *testing.T) {
	f := newFixture(t, "P1", "StatisticsResults.txt", map[string]string{
		"a.txt": "1\n2\nx\n",
		"b.txt": "nope\n",
	})
	logger, _ := testutil.NewTestLogger(t)

	providers, err := infrastructure.InitializeOTel(config.Default().Telemetry, logger)
	require.NoError(t, err)
	defer providers.Shutdown(context.Background())

	_, err = NewRunner(f.opts, logger, providers.Tracer, providers.Metrics).Run(context.Background(), NewStatisticsJob(f.opts, f.manager, logger))
	require.NoError(t, err)

	families, err := providers.Registry.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "txtcli_files") && !strings.HasPrefix(mf.GetName(), "txtcli_lines") {
			continue
		}
		for _, m := range mf.GetMetric() {
			var status string
			for _, l := range m.GetLabel() {
				if l.GetName() == "status" {
					status = l.GetValue()
				}
			}
			counts[strings.SplitN(mf.GetName(), "_total", 2)[0]+"/"+status] += m.GetCounter().GetValue()
		}
	}

	assert.Equal(t, 1.0, counts["txtcli_files/processed"])
	assert.Equal(t, 1.0, counts["txtcli_files/skipped"])
	assert.Equal(t, 2.0, counts["txtcli_lines/parsed"])
	assert.Equal(t, 2.0, counts["txtcli_lines/skipped"])
}

func TestWriteDiagnostics(t *testing.T) {
	f := newFixture(t, "P1", "StatisticsResults.txt", map[string]string{
		"a.txt": "1\nbad\n",
		"b.txt": "\n",
	})
	logger, _ := testutil.NewTestLogger(t)

	summary, err := NewRunner(f.opts, logger, nil, nil).Run(context.Background(), NewStatisticsJob(f.opts, f.manager, logger))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, WriteDiagnostics(&out, summary))

	a := filepath.Join("P1", "a.txt")
	b := filepath.Join("P1", "b.txt")
	want := "\nEncountered invalid lines:\n" +
		"Invalid data in " + a + ". Skipping line 2: bad\n" +
		"Invalid data in " + b + ". Skipping line 1: \n" +
		"\nSkipped files:\n" +
		"Skipping " + b + ": does not contain valid numerical data\n"
	assert.Equal(t, want, out.String())
}

func TestWriteDiagnostics_Clean(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteDiagnostics(&out, &Summary{}))
	assert.Empty(t, out.String())
}

func TestRun_OutputError(t *testing.T) {
	f := newFixture(t, "P3", "WordCountResults.txt", map[string]string{"a.txt": "x\n"})
	blocker := filepath.Join(f.base, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0644))
	f.opts.OutputPath = filepath.Join(blocker, "out.txt")
	logger, _ := testutil.NewTestLogger(t)

	summary, err := NewRunner(f.opts, logger, nil, nil).Run(context.Background(), NewWordCountJob(f.opts, f.manager))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeOutput))
	assert.Equal(t, 0, summary.Processed)
}
