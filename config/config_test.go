package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrieladeremi/cb-gpa-test/config"
	"github.com/gabrieladeremi/cb-gpa-test/utils"
)

// unsetEnv clears key for the duration of the test; t.Setenv restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadConfigDefaults(t *testing.T) {
	unsetEnv(t, "GPA_LOG_LEVEL")
	unsetEnv(t, "GPA_OUTPUT_FORMAT")
	unsetEnv(t, "GPA_INVALID_GRADE_POLICY")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, utils.LogLevelWarn, cfg.LogLevel)
	assert.Equal(t, config.OutputFormatText, cfg.OutputFormat)
	assert.Equal(t, config.PolicyReject, cfg.InvalidGradePolicy)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("GPA_LOG_LEVEL", "debug")
	t.Setenv("GPA_OUTPUT_FORMAT", "json")
	t.Setenv("GPA_INVALID_GRADE_POLICY", "zero")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, utils.LogLevelDebug, cfg.LogLevel)
	assert.Equal(t, config.OutputFormatJSON, cfg.OutputFormat)
	assert.Equal(t, config.PolicyZero, cfg.InvalidGradePolicy)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad log level", "GPA_LOG_LEVEL", "shout"},
		{"bad output format", "GPA_OUTPUT_FORMAT", "yaml"},
		{"bad policy", "GPA_INVALID_GRADE_POLICY", "ignore"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := config.LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestApplyOptions(t *testing.T) {
	logger := utils.NewNopLogger()
	cfg := config.NewConfig()
	config.ApplyOptions(cfg,
		config.SetLogLevel(utils.LogLevelInfo),
		config.SetOutputFormat(config.OutputFormatJSON),
		config.SetInvalidGradePolicy(config.PolicyZero),
		config.SetLogger(logger),
	)

	assert.Equal(t, utils.LogLevelInfo, cfg.LogLevel)
	assert.Equal(t, config.OutputFormatJSON, cfg.OutputFormat)
	assert.Equal(t, config.PolicyZero, cfg.InvalidGradePolicy)
	assert.Same(t, logger, cfg.Logger)
	assert.NoError(t, config.Validate(cfg))
}

func TestValidate(t *testing.T) {
	cfg := config.NewConfig()
	require.NoError(t, config.Validate(cfg))

	cfg.InvalidGradePolicy = "lenient"
	assert.Error(t, config.Validate(cfg))

	cfg = config.NewConfig()
	cfg.LogLevel = utils.LogLevel(42)
	assert.Error(t, config.Validate(cfg))
}

func TestGetLoggerDefaultsToStderrLogger(t *testing.T) {
	cfg := config.NewConfig()
	logger := cfg.GetLogger()
	require.NotNil(t, logger)
	assert.IsType(t, &utils.DefaultLogger{}, logger)
	assert.Same(t, logger, cfg.GetLogger())
}
