package config

// Application constants
const (
	// Application Info
	AppName    = "txtcli"
	AppVersion = "1.0.0"

	// EnvPrefix namespaces every environment variable (TXT_LOGGING_LEVEL, ...)
	EnvPrefix = "TXT"

	// DotEnvFile is loaded into the environment before envconfig runs
	DotEnvFile = ".env"

	// Input files
	DefaultExtension = ".txt"

	// Statistics utility
	DefaultStatisticsDir    = "P1"
	DefaultStatisticsOutput = "StatisticsResults.txt"

	// Conversion utility
	DefaultConversionDir    = "P2"
	DefaultConversionOutput = "ConversionResults.txt"

	// Word count utility
	DefaultWordCountDir    = "P3"
	DefaultWordCountOutput = "WordCountResults.txt"

	// Log Settings
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "json"
	DefaultLogOutput   = "stderr"
	DefaultLogFilePath = "logs/txtcli.log"

	// Telemetry
	DefaultTraceExporter = "none"
	DefaultSampleRatio   = 1.0
)
