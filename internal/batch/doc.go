// Package batch runs a utility over every matching file of an input
// directory.
//
// A Runner discovers the files in name order, reads each one as UTF-8 lines
// and hands them to a Job. Unparseable lines and unreadable or empty files
// are recorded as skips and never stop the run. Only a missing input
// directory, an output failure or a cancelled context end it early.
//
// Three jobs are provided:
//
//	StatisticsJob   count, mean, median, mode, variance and standard deviation
//	ConversionJob   signed binary and hexadecimal forms of each integer
//	WordCountJob    case-insensitive word frequencies
//
// Every run is traced with a "batch.run" span and one "batch.file" span per
// file, and counted in the batch metrics.
package batch
