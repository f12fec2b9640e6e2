// File: config/config.go

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/gabrieladeremi/cb-gpa-test/utils"
)

const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"

	// PolicyReject drops unrecognized grades from the average.
	PolicyReject = "reject"
	// PolicyZero scores every unrecognized token, string or not, as 0.0 points.
	PolicyZero = "zero"
)

type Config struct {
	LogLevel           utils.LogLevel `env:"GPA_LOG_LEVEL" envDefault:"WARN"`
	OutputFormat       string         `env:"GPA_OUTPUT_FORMAT" envDefault:"text" validate:"oneof=text json"`
	InvalidGradePolicy string         `env:"GPA_INVALID_GRADE_POLICY" envDefault:"reject" validate:"oneof=reject zero"`
	Logger             utils.Logger   `validate:"-"`
}

var validate = validator.New()

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the enumerated fields of cfg.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.LogLevel < utils.LogLevelOff || cfg.LogLevel > utils.LogLevelDebug {
		return fmt.Errorf("invalid configuration: log level %d out of range", int(cfg.LogLevel))
	}
	return nil
}

type ConfigOption func(*Config)

func NewConfig() *Config {
	return &Config{
		LogLevel:           utils.LogLevelWarn,
		OutputFormat:       OutputFormatText,
		InvalidGradePolicy: PolicyReject,
	}
}

func SetLogLevel(level utils.LogLevel) ConfigOption {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// SetLogger replaces the stderr logger that receives rejected-grade diagnostics.
func SetLogger(logger utils.Logger) ConfigOption {
	return func(c *Config) {
		c.Logger = logger
	}
}

func SetOutputFormat(format string) ConfigOption {
	return func(c *Config) {
		c.OutputFormat = format
	}
}

func SetInvalidGradePolicy(policy string) ConfigOption {
	return func(c *Config) {
		c.InvalidGradePolicy = policy
	}
}

func ApplyOptions(cfg *Config, options ...ConfigOption) {
	for _, option := range options {
		option(cfg)
	}
}

// GetLogger returns the configured logger, building a stderr logger at LogLevel when none was set.
func (c *Config) GetLogger() utils.Logger {
	if c.Logger == nil {
		c.Logger = utils.NewLogger(c.LogLevel)
	}
	return c.Logger
}
