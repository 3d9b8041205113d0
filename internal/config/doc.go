// Package config provides centralized configuration management for the
// batch utilities. It handles loading configuration from multiple sources,
// validation, and path resolution.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority, .env files included)
//	2. A YAML configuration file (txtcli.yaml or configs/txtcli.yaml)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern TXT_* for namespacing:
//
//	TXT_LOGGING_LEVEL=debug
//	TXT_LOGGING_OUTPUT=both
//	TXT_STATISTICS_INPUT_DIR=P1
//	TXT_STATISTICS_XLSX_FILE=StatisticsResults.xlsx
//	TXT_STATISTICS_CSV_FILE=StatisticsResults.csv
//	TXT_CONVERSION_OUTPUT_FILE=ConversionResults.txt
//	TXT_TELEMETRY_TRACE_EXPORTER=stdout
//	TXT_TELEMETRY_METRICS_FILE=metrics/txtcli.prom
//
// # Validation
//
// The loaded configuration is validated with struct tags
// (go-playground/validator): log levels and outputs must be known values,
// every utility needs an input directory, an extension starting with "." and
// an output file.
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paths, err := config.GetPaths(cfg.Statistics)
package config
