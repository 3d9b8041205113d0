package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging    LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Telemetry  TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
	Statistics JobConfig       `yaml:"statistics" envconfig:"STATISTICS"`
	Conversion JobConfig       `yaml:"conversion" envconfig:"CONVERSION"`
	WordCount  JobConfig       `yaml:"wordcount" envconfig:"WORDCOUNT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console stderr file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_if=Output file,required_if=Output both"`
}

// TelemetryConfig controls tracing and the metrics textfile
type TelemetryConfig struct {
	TraceExporter string  `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER" validate:"oneof=none stdout"`
	TraceFile     string  `yaml:"trace_file" envconfig:"TRACE_FILE"`
	SampleRatio   float64 `yaml:"sample_ratio" envconfig:"SAMPLE_RATIO" validate:"gte=0,lte=1"`
	MetricsFile   string  `yaml:"metrics_file" envconfig:"METRICS_FILE"`
}

// JobConfig describes where one utility reads from and writes to
type JobConfig struct {
	InputDir   string `yaml:"input_dir" envconfig:"INPUT_DIR" validate:"required"`
	Extension  string `yaml:"extension" envconfig:"EXTENSION" validate:"required,startswith=."`
	OutputFile string `yaml:"output_file" envconfig:"OUTPUT_FILE" validate:"required"`
	XLSXFile   string `yaml:"xlsx_file" envconfig:"XLSX_FILE"`
	CSVFile    string `yaml:"csv_file" envconfig:"CSV_FILE"`
}

// Load loads configuration from defaults, an optional YAML file and the
// environment, in increasing order of precedence. An empty configFile means
// "look in the usual places"; a named file that does not exist is an error.
func Load(configFile string) (*Config, error) {
	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
	}

	cfg := Default()

	if configFile == "" {
		configFile = getConfigFilePath()
	}
	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Only variables that are set override; none of the fields carry envconfig defaults
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadDotEnv populates the environment from a .env file when one exists.
// Variables already set in the environment win.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// loadFromFile overlays YAML configuration onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", filePath, err)
	}

	return nil
}

// validate validates the configuration
func (c *Config) validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("invalid value %v for %s (rule %q)", first.Value(), first.Namespace(), first.Tag())
		}
		return err
	}

	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	// Check for config file in common locations
	locations := []string{
		"txtcli.yaml",
		"configs/txtcli.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Format:   DefaultLogFormat,
			Output:   DefaultLogOutput,
			FilePath: DefaultLogFilePath,
		},
		Telemetry: TelemetryConfig{
			TraceExporter: DefaultTraceExporter,
			SampleRatio:   DefaultSampleRatio,
		},
		Statistics: JobConfig{
			InputDir:   DefaultStatisticsDir,
			Extension:  DefaultExtension,
			OutputFile: DefaultStatisticsOutput,
		},
		Conversion: JobConfig{
			InputDir:   DefaultConversionDir,
			Extension:  DefaultExtension,
			OutputFile: DefaultConversionOutput,
		},
		WordCount: JobConfig{
			InputDir:   DefaultWordCountDir,
			Extension:  DefaultExtension,
			OutputFile: DefaultWordCountOutput,
		},
	}
}
