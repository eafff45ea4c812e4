package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/sheetworks/cut-estimator/internal/validator"
)

const envPrefix = "CUT_ESTIMATOR"

type Config struct {
	Dataset *datasetConfig
	Report  *reportConfig
	Service *svcConfig
}

type datasetConfig struct {
	Path  string `envconfig:"DATASET" default:"date.ods" validate:"required,dataset_path"`
	Sheet string `envconfig:"SHEET" default:"date" validate:"sheet_name"`
}

type reportConfig struct {
	Dir    string `envconfig:"REPORT_DIR" default:"." validate:"required"`
	Format string `envconfig:"REPORT_FORMAT" default:"xlsx" validate:"oneof=xlsx csv ods"`
}

type svcConfig struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"log_level"`
	MetricsFile string `envconfig:"METRICS_FILE" default:""`
}

// Defaults returns the configuration used when no environment variable is set.
func Defaults() *Config {
	return &Config{
		Dataset: &datasetConfig{Path: "date.ods", Sheet: "date"},
		Report:  &reportConfig{Dir: ".", Format: "xlsx"},
		Service: &svcConfig{LogLevel: "info"},
	}
}

// New reads the configuration from the CUT_ESTIMATOR_* environment variables.
func New() (*Config, error) {
	cfg := &Config{
		Dataset: new(datasetConfig),
		Report:  new(reportConfig),
		Service: new(svcConfig),
	}
	for _, section := range []any{cfg.Dataset, cfg.Report, cfg.Service} {
		if err := envconfig.Process(envPrefix, section); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Validate checks the configuration, usually after the command line flags were applied.
func (c *Config) Validate() error {
	v := validator.NewValidator()
	v.Register(validator.NewConfigValidationRules()...)

	for _, section := range []any{c.Dataset, c.Report, c.Service} {
		if err := v.Struct(section); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}
	return nil
}
