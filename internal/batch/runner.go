package batch

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"txtcli/internal/config"
	"txtcli/internal/errors"
	"txtcli/internal/files"
	"txtcli/internal/infrastructure"
	"txtcli/pkg/contracts/domain"
)

const TracerName = "txtcli/batch"

// Options locates the input and output of one run. InputDir is kept as
// configured so reports show paths the way the user wrote them; it is
// resolved against BaseDir when relative. Output paths are absolute.
type Options struct {
	BaseDir    string
	InputDir   string
	Extension  string
	OutputPath string
	XLSXPath   string
	CSVPath    string
	Console    io.Writer
}

// NewOptions builds run options from a job configuration and its resolved
// paths. console receives the human-readable results and may be nil.
func NewOptions(job config.JobConfig, paths *config.Paths, console io.Writer) Options {
	return Options{
		BaseDir:    paths.BaseDir,
		InputDir:   job.InputDir,
		Extension:  paths.Extension,
		OutputPath: paths.OutputFile,
		XLSXPath:   paths.XLSXFile,
		CSVPath:    paths.CSVFile,
		Console:    console,
	}
}

// FileResult is what a job reports back for one input file
type FileResult struct {
	Parsed int
	Skips  []domain.Skip
}

// Job is one of the batch utilities. Begin is called once the input
// directory has been found, ProcessFile once per readable file in name
// order, and Finish after the last file. Close releases whatever Begin
// acquired and is always called.
type Job interface {
	Name() string
	Begin(ctx context.Context) error
	ProcessFile(ctx context.Context, file files.FileInfo, lines []string) (FileResult, error)
	Finish(ctx context.Context, elapsed time.Duration) (written bool, err error)
	Close() error
}

// Runner drives a Job over the files of the input directory
type Runner struct {
	opts      Options
	discovery *files.Discovery
	logger    *slog.Logger
	tracer    trace.Tracer
	metrics   *infrastructure.BatchMetrics
}

// NewRunner creates a runner. A nil tracer disables spans; nil metrics
// disable metric recording.
func NewRunner(opts Options, logger *slog.Logger, tracer trace.Tracer, metrics *infrastructure.BatchMetrics) *Runner {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(TracerName)
	}
	return &Runner{
		opts:      opts,
		discovery: files.NewDiscovery(opts.BaseDir),
		logger:    infrastructure.WithComponent(logger, "batch"),
		tracer:    tracer,
		metrics:   metrics,
	}
}

// Files lists the input files in name order
func (r *Runner) Files(ctx context.Context) ([]files.FileInfo, error) {
	inputs, err := r.discovery.FindFiles(r.opts.InputDir, r.opts.Extension)
	if err != nil {
		r.logger.ErrorContext(ctx, "Input directory unavailable",
			slog.String("input_dir", r.opts.InputDir),
			slog.String("error", err.Error()))
		return nil, err
	}
	return inputs, nil
}

// Run processes every input file with job. Unreadable files, unparseable
// lines and empty results are collected as skips; the run stops only when
// the input directory is missing, output cannot be written or ctx is done.
func (r *Runner) Run(ctx context.Context, job Job) (summary *Summary, err error) {
	start := time.Now()
	summary = &Summary{Job: job.Name()}

	ctx, span := r.tracer.Start(ctx, "batch.run",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("batch.job", job.Name()),
			attribute.String("batch.input_dir", r.opts.InputDir),
		),
	)
	defer func() {
		summary.Elapsed = time.Since(start)
		if err != nil {
			infrastructure.RecordError(ctx, err)
		}
		span.SetAttributes(
			attribute.Int("batch.files", summary.Files),
			attribute.Int("batch.processed", summary.Processed),
			attribute.Int("batch.skips", len(summary.Skips)),
		)
		span.End()
		r.metrics.RecordRun(ctx, job.Name(), summary.Elapsed, err == nil)
	}()

	inputs, err := r.Files(ctx)
	if err != nil {
		return summary, err
	}
	summary.Files = len(inputs)

	r.logger.InfoContext(ctx, "Starting batch run",
		slog.String("job", job.Name()),
		slog.String("input_dir", r.opts.InputDir),
		slog.Int("files", len(inputs)))

	if err := job.Begin(ctx); err != nil {
		return summary, err
	}
	defer func() {
		if cerr := job.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("batch run interrupted: %w", err)
		}
		if err := r.processFile(ctx, job, in, summary); err != nil {
			return summary, err
		}
	}

	written, err := job.Finish(ctx, time.Since(start))
	if err != nil {
		return summary, err
	}
	if written {
		summary.Output = r.opts.OutputPath
	}

	r.logger.InfoContext(ctx, "Batch run completed",
		slog.String("job", job.Name()),
		slog.Int("files", summary.Files),
		slog.Int("processed", summary.Processed),
		slog.Int("skips", len(summary.Skips)),
		slog.Bool("output_written", written),
		slog.Duration("duration", time.Since(start)))

	return summary, nil
}

func (r *Runner) processFile(ctx context.Context, job Job, in files.FileInfo, summary *Summary) error {
	fileStart := time.Now()
	ctx, span := r.tracer.Start(ctx, "batch.file",
		trace.WithAttributes(
			attribute.String("batch.job", job.Name()),
			attribute.String("file.path", in.RelPath),
			attribute.Int64("file.size", in.Size),
		),
	)
	defer span.End()

	r.logger.DebugContext(ctx, "Processing file", slog.String("file", in.RelPath))

	lines, err := files.ReadLines(in.Path)
	if err != nil {
		r.skipFile(ctx, summary, in, err)
		r.metrics.RecordFile(ctx, job.Name(), 0, 0, time.Since(fileStart), false)
		return nil
	}
	span.SetAttributes(attribute.Int("file.lines", len(lines)))

	result, err := job.ProcessFile(ctx, in, lines)
	for _, skip := range result.Skips {
		r.logger.WarnContext(ctx, "Skipping line",
			slog.String("file", skip.File),
			slog.Int("line_number", skip.LineNumber),
			slog.String("line", skip.Line),
			slog.String("reason", skip.Reason))
	}
	summary.Skips = append(summary.Skips, result.Skips...)

	if err != nil {
		if errors.Fatal(err) {
			infrastructure.RecordError(ctx, err)
			return err
		}
		r.skipFile(ctx, summary, in, err)
		r.metrics.RecordFile(ctx, job.Name(), result.Parsed, len(result.Skips), time.Since(fileStart), false)
		return nil
	}

	summary.Processed++
	infrastructure.AddSpanEvent(ctx, "file.processed",
		attribute.Int("lines.parsed", result.Parsed),
		attribute.Int("lines.skipped", len(result.Skips)))
	r.metrics.RecordFile(ctx, job.Name(), result.Parsed, len(result.Skips), time.Since(fileStart), true)
	return nil
}

func (r *Runner) skipFile(ctx context.Context, summary *Summary, in files.FileInfo, err error) {
	skip := domain.Skip{
		File:   in.RelPath,
		Kind:   string(errors.TypeOf(err)),
		Reason: reason(err),
	}
	summary.Skips = append(summary.Skips, skip)

	infrastructure.AddSpanEvent(ctx, "file.skipped", attribute.String("skip.kind", skip.Kind))
	r.logger.WarnContext(ctx, "Skipping file",
		slog.String("file", in.RelPath),
		slog.String("kind", skip.Kind),
		slog.String("reason", skip.Reason))
}

// reason is the short human-readable cause of a skip
func reason(err error) string {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		return err.Error()
	}
	switch {
	case appErr.Type == errors.ErrTypeEmptyResult:
		return "does not contain valid numerical data"
	case appErr.Cause != nil:
		return appErr.Cause.Error()
	default:
		return appErr.Message
	}
}
