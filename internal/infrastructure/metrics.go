package infrastructure

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BatchMetrics holds the instruments recorded by batch runs
type BatchMetrics struct {
	FilesTotal   metric.Int64Counter
	LinesTotal   metric.Int64Counter
	FileDuration metric.Float64Histogram
	RunDuration  metric.Float64Histogram
}

// NewBatchMetrics creates the batch instruments on meter
func NewBatchMetrics(meter metric.Meter) (*BatchMetrics, error) {
	filesTotal, err := meter.Int64Counter(
		"txtcli_files",
		metric.WithDescription("Input files handled, by job and outcome"),
	)
	if err != nil {
		return nil, err
	}

	linesTotal, err := meter.Int64Counter(
		"txtcli_lines",
		metric.WithDescription("Input lines handled, by job and outcome"),
	)
	if err != nil {
		return nil, err
	}

	fileDuration, err := meter.Float64Histogram(
		"txtcli_file_duration",
		metric.WithDescription("Time spent on a single input file"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	runDuration, err := meter.Float64Histogram(
		"txtcli_run_duration",
		metric.WithDescription("Time spent on a whole batch run"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &BatchMetrics{
		FilesTotal:   filesTotal,
		LinesTotal:   linesTotal,
		FileDuration: fileDuration,
		RunDuration:  runDuration,
	}, nil
}

// RecordFile records the outcome of one input file. A nil receiver is a no-op.
func (m *BatchMetrics) RecordFile(ctx context.Context, job string, parsed, skipped int, duration time.Duration, processed bool) {
	if m == nil {
		return
	}

	status := "processed"
	if !processed {
		status = "skipped"
	}
	jobAttr := attribute.String("job", job)

	m.FilesTotal.Add(ctx, 1, metric.WithAttributes(jobAttr, attribute.String("status", status)))
	m.LinesTotal.Add(ctx, int64(parsed), metric.WithAttributes(jobAttr, attribute.String("status", "parsed")))
	m.LinesTotal.Add(ctx, int64(skipped), metric.WithAttributes(jobAttr, attribute.String("status", "skipped")))
	m.FileDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(jobAttr))
}

// RecordRun records the duration of a batch run. A nil receiver is a no-op.
func (m *BatchMetrics) RecordRun(ctx context.Context, job string, duration time.Duration, success bool) {
	if m == nil {
		return
	}

	status := "success"
	if !success {
		status = "failure"
	}
	m.RunDuration.Record(ctx, duration.Seconds(),
		metric.WithAttributes(attribute.String("job", job), attribute.String("status", status)))
}
