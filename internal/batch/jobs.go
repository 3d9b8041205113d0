package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"txtcli/internal/baseconv"
	"txtcli/internal/errors"
	"txtcli/internal/exporter"
	"txtcli/internal/files"
	"txtcli/internal/numeric"
	"txtcli/internal/statistics"
	"txtcli/internal/wordfreq"
	"txtcli/pkg/contracts/domain"
)

// Job names, also used as metric and span attributes
const (
	JobStatistics = "statistics"
	JobConversion = "conversion"
	JobWordCount  = "wordcount"
)

func lineSkip(file string, index int, line string, err error) domain.Skip {
	return domain.Skip{
		File:       file,
		LineNumber: index + 1,
		Line:       line,
		Kind:       string(errors.TypeOf(err)),
		Reason:     reason(err),
	}
}

func console(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

// StatisticsJob computes a statistics record per file and writes the table
// at the end of the run. Nothing is written when no file had valid data.
type StatisticsJob struct {
	opts    Options
	manager *files.Manager
	logger  *slog.Logger
	records []domain.StatisticsRecord
}

// NewStatisticsJob creates the statistics utility
func NewStatisticsJob(opts Options, manager *files.Manager, logger *slog.Logger) *StatisticsJob {
	return &StatisticsJob{opts: opts, manager: manager, logger: logger}
}

func (j *StatisticsJob) Name() string { return JobStatistics }

func (j *StatisticsJob) Begin(context.Context) error {
	j.records = nil
	return nil
}

func (j *StatisticsJob) ProcessFile(_ context.Context, file files.FileInfo, lines []string) (FileResult, error) {
	start := time.Now()
	var result FileResult

	series := make([]float64, 0, len(lines))
	for i, line := range lines {
		v, err := numeric.ParseFloat(line)
		if err != nil {
			result.Skips = append(result.Skips, lineSkip(file.RelPath, i, line, err))
			continue
		}
		series = append(series, v)
	}
	result.Parsed = len(series)

	rec, err := statistics.Compute(series)
	if err != nil {
		return result, errors.NewEmptyResultError(file.RelPath)
	}
	rec.File = file.Name
	rec.Elapsed = time.Since(start)
	j.records = append(j.records, rec)
	return result, nil
}

// Records returns the records computed so far
func (j *StatisticsJob) Records() []domain.StatisticsRecord {
	return j.records
}

func (j *StatisticsJob) Finish(ctx context.Context, elapsed time.Duration) (bool, error) {
	if len(j.records) == 0 {
		j.logger.WarnContext(ctx, "No file contained valid numerical data, no results written")
		return false, nil
	}

	fmt.Fprintln(console(j.opts.Console), exporter.StatisticsTable(j.records))

	report := exporter.StatisticsGrid(j.records, elapsed) + "\n"
	if err := j.manager.WriteFile(j.opts.OutputPath, []byte(report)); err != nil {
		return false, err
	}

	if j.opts.XLSXPath != "" {
		if err := exporter.WriteStatisticsXLSX(j.opts.XLSXPath, j.records, elapsed); err != nil {
			return true, errors.NewOutputError("failed to write XLSX export", err)
		}
		j.logger.InfoContext(ctx, "XLSX export written", slog.String("path", j.opts.XLSXPath))
	}

	if j.opts.CSVPath != "" {
		if err := exporter.NewCSVWriter(j.manager.Paths()).WriteStatisticsCSV(j.opts.CSVPath, j.records); err != nil {
			return true, errors.NewOutputError("failed to write CSV export", err)
		}
		j.logger.InfoContext(ctx, "CSV export written", slog.String("path", j.opts.CSVPath))
	}

	return true, nil
}

func (j *StatisticsJob) Close() error { return nil }

// sectionJob opens the report at Begin and streams one section per file
type sectionJob struct {
	opts    Options
	manager *files.Manager
	report  *exporter.SectionWriter
}

func (j *sectionJob) Begin(context.Context) error {
	f, err := j.manager.CreateOutput(j.opts.OutputPath)
	if err != nil {
		return err
	}
	j.report = exporter.NewSectionWriter(f, j.opts.Console)
	return nil
}

func (j *sectionJob) Finish(context.Context, time.Duration) (bool, error) {
	if err := j.Close(); err != nil {
		return false, err
	}
	return true, nil
}

func (j *sectionJob) Close() error {
	if j.report == nil {
		return nil
	}
	err := j.report.Close()
	j.report = nil
	return err
}

// ConversionJob writes the binary and hexadecimal form of every integer
type ConversionJob struct {
	sectionJob
}

// NewConversionJob creates the conversion utility
func NewConversionJob(opts Options, manager *files.Manager) *ConversionJob {
	return &ConversionJob{sectionJob{opts: opts, manager: manager}}
}

func (j *ConversionJob) Name() string { return JobConversion }

func (j *ConversionJob) ProcessFile(_ context.Context, file files.FileInfo, lines []string) (FileResult, error) {
	var result FileResult

	if err := j.report.Header("Converting numbers in file: " + file.RelPath); err != nil {
		return result, err
	}
	for i, line := range lines {
		n, err := numeric.ParseInt(line)
		if err != nil {
			result.Skips = append(result.Skips, lineSkip(file.RelPath, i, line, err))
			continue
		}
		if err := j.report.Line(baseconv.Format(baseconv.Convert(n))); err != nil {
			return result, err
		}
		result.Parsed++
	}
	return result, nil
}

// WordCountJob writes the word frequencies of every file
type WordCountJob struct {
	sectionJob
}

// NewWordCountJob creates the word count utility
func NewWordCountJob(opts Options, manager *files.Manager) *WordCountJob {
	return &WordCountJob{sectionJob{opts: opts, manager: manager}}
}

func (j *WordCountJob) Name() string { return JobWordCount }

func (j *WordCountJob) ProcessFile(_ context.Context, file files.FileInfo, lines []string) (FileResult, error) {
	var result FileResult

	if err := j.report.Header("Word frequency in file: " + file.RelPath); err != nil {
		return result, err
	}

	counter := wordfreq.NewCounter()
	counter.AddAll(lines)
	for _, wc := range counter.Entries() {
		if err := j.report.Line(fmt.Sprintf("%s: %d", wc.Word, wc.Count)); err != nil {
			return result, err
		}
	}
	result.Parsed = len(lines)
	return result, nil
}
