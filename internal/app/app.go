package app

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"txtcli/internal/batch"
	"txtcli/internal/config"
	"txtcli/internal/errors"
	"txtcli/internal/files"
	"txtcli/internal/infrastructure"
	"txtcli/pkg/contracts"
)

// Exit codes returned by Main
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Application wires configuration, logging and telemetry for one utility run
type Application struct {
	Config        *config.Config
	Logger        *slog.Logger
	OTelProviders *infrastructure.OTelProviders
}

// Overrides carries command-line values that replace configured ones.
// Empty fields leave the configuration untouched.
type Overrides struct {
	InputDir   string
	Extension  string
	OutputFile string
}

// NewApplication loads configuration and initializes logging and telemetry
func NewApplication(configFile string) (*Application, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, errors.NewConfigError("failed to load configuration", err)
	}
	return New(cfg)
}

// New initializes logging and telemetry for an already loaded configuration
func New(cfg *config.Config) (*Application, error) {
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	otelProviders, err := infrastructure.InitializeOTel(cfg.Telemetry, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	return &Application{
		Config:        cfg,
		Logger:        logger,
		OTelProviders: otelProviders,
	}, nil
}

// JobConfig returns the configuration of the named utility with overrides applied
func (a *Application) JobConfig(name string, ov Overrides) (config.JobConfig, error) {
	var job config.JobConfig
	switch name {
	case batch.JobStatistics:
		job = a.Config.Statistics
	case batch.JobConversion:
		job = a.Config.Conversion
	case batch.JobWordCount:
		job = a.Config.WordCount
	default:
		return job, errors.NewConfigError(fmt.Sprintf("unknown utility %q", name), nil)
	}

	if ov.InputDir != "" {
		job.InputDir = ov.InputDir
	}
	if ov.Extension != "" {
		job.Extension = ov.Extension
	}
	if ov.OutputFile != "" {
		job.OutputFile = ov.OutputFile
	}
	return job, nil
}

// RunJob runs the named utility. Results are echoed to console.
func (a *Application) RunJob(ctx context.Context, name string, ov Overrides, console io.Writer) (*batch.Summary, error) {
	job, err := a.JobConfig(name, ov)
	if err != nil {
		return nil, err
	}

	paths, err := config.GetPaths(job)
	if err != nil {
		return nil, err
	}
	paths.LogPathResolution(a.Logger)

	ctx = infrastructure.EnsureRunID(ctx)
	a.Logger.InfoContext(ctx, "Utility starting",
		slog.String("utility", name),
		slog.String("version", contracts.Version),
		slog.String("input_dir", job.InputDir),
		slog.String("output_file", paths.OutputFile))

	opts := batch.NewOptions(job, paths, console)
	manager := files.NewManager(paths)

	var j batch.Job
	switch name {
	case batch.JobStatistics:
		j = batch.NewStatisticsJob(opts, manager, a.Logger)
	case batch.JobConversion:
		j = batch.NewConversionJob(opts, manager)
	case batch.JobWordCount:
		j = batch.NewWordCountJob(opts, manager)
	}

	runner := batch.NewRunner(opts, a.Logger, a.OTelProviders.Tracer, a.OTelProviders.Metrics)
	return runner.Run(ctx, j)
}

// Shutdown flushes telemetry and closes the log file
func (a *Application) Shutdown(ctx context.Context) error {
	var errs []error
	if a.OTelProviders != nil {
		if err := a.OTelProviders.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if err := infrastructure.CloseLogFile(); err != nil {
		errs = append(errs, err)
	}
	return stderrors.Join(errs...)
}

// Main is the entry point shared by the utility commands. It parses args,
// runs the utility and returns the process exit code.
func Main(name string, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configFile  = fs.String("config", "", "Path to a YAML configuration file")
		inputDir    = fs.String("dir", "", "Input directory (overrides configuration)")
		extension   = fs.String("ext", "", "Input file extension (overrides configuration)")
		outputFile  = fs.String("out", "", "Results file (overrides configuration)")
		showVersion = fs.Bool("version", false, "Print version information and exit")
	)
	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	if *showVersion {
		fmt.Fprintln(stdout, contracts.GetFullVersionString(name))
		return ExitOK
	}

	start := time.Now()

	application, err := NewApplication(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := application.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(stderr, "Warning: shutdown: %v\n", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ov := Overrides{InputDir: *inputDir, Extension: *extension, OutputFile: *outputFile}
	summary, err := application.RunJob(ctx, name, ov, stdout)
	if err != nil {
		infrastructure.WithError(application.Logger, err).Error("Utility failed", slog.String("utility", name))
		reportError(stderr, err)
		return ExitError
	}

	if err := batch.WriteDiagnostics(stdout, summary); err != nil {
		infrastructure.WithError(application.Logger, err).Warn("Failed to print diagnostics")
	}

	if summary.Output != "" {
		job, _ := application.JobConfig(name, ov)
		fmt.Fprintf(stdout, "\nResults written to %s\n", job.OutputFile)
	} else {
		fmt.Fprintln(stdout, "\nNo results written")
	}
	fmt.Fprintf(stdout, "Total execution time: %v seconds\n", time.Since(start).Seconds())

	return ExitOK
}

// reportError prints a user-facing message for a failed run
func reportError(w io.Writer, err error) {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) && appErr.Type == errors.ErrTypeInputUnavailable {
		fmt.Fprintln(w, appErr.Message)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
