// Package exporter renders and writes the reports of the batch utilities.
//
// This package contains four main components:
//
// Tables: StatisticsTable and StatisticsGrid render statistics records as
// text tables for the console and the results file.
//
// SectionWriter: incremental free-text report made of per-file sections,
// used by the conversion and word count utilities.
//
// CSVWriter and WriteStatisticsXLSX: optional machine-readable copies of the
// statistics table.
//
// Example usage:
//
//	fmt.Println(exporter.StatisticsTable(records))
//	report := exporter.StatisticsGrid(records, total)
//
//	sw := exporter.NewSectionWriter(file, os.Stdout)
//	sw.Header("Word frequency in file: P3/a.txt")
//	sw.Line("the: 2")
//	err := sw.Close()
package exporter
