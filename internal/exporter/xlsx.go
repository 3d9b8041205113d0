package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"txtcli/pkg/contracts/domain"
)

// StatisticsSheet is the worksheet name of the XLSX export
const StatisticsSheet = "Statistics"

// WriteStatisticsXLSX writes the statistics table to a workbook. Numeric
// columns are stored as numbers; the last row holds the total run time.
func WriteStatisticsXLSX(path string, records []domain.StatisticsRecord, total time.Duration) error {
	slog.Debug("Writing XLSX file",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), StatisticsSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(domain.StatisticsColumns))
	for i, c := range domain.StatisticsColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(StatisticsSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			r.File,
			r.Count,
			r.NonZeroCount,
			r.Mean,
			r.Median,
			r.Mode,
			r.Variance,
			r.StandardDeviation,
			roundSeconds(r.Elapsed),
		}
		if err := f.SetSheetRow(StatisticsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	cell, err := excelize.CoordinatesToCellName(1, len(records)+2)
	if err != nil {
		return err
	}
	totalRow := []interface{}{TotalTimeLabel, total.Seconds()}
	if err := f.SetSheetRow(StatisticsSheet, cell, &totalRow); err != nil {
		return fmt.Errorf("failed to write total row: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func roundSeconds(d time.Duration) float64 {
	return float64(d.Round(10*time.Millisecond)) / float64(time.Second)
}
