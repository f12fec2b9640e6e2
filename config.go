// Package gpa computes grade point averages from letter grades.
// This file re-exports configuration types and functions from the config package so
// callers can configure a calculation without importing config directly.
package gpa

import (
	"github.com/gabrieladeremi/cb-gpa-test/config"
	"github.com/gabrieladeremi/cb-gpa-test/utils"
)

// Re-export core configuration types for easier access
type (
	// Config controls logging, output format and the invalid-grade policy.
	//
	// Example usage:
	//   cfg := NewConfig()
	//   ApplyOptions(cfg, SetInvalidGradePolicy(PolicyZero))
	Config = config.Config

	// ConfigOption is a function type that modifies a Config instance.
	ConfigOption = config.ConfigOption

	// LogLevel defines the verbosity of logging output.
	LogLevel = utils.LogLevel

	// Logger receives one WARN record per rejected grade.
	Logger = utils.Logger
)

// Re-export core configuration functions
var (
	// LoadConfig reads GPA_LOG_LEVEL, GPA_OUTPUT_FORMAT and GPA_INVALID_GRADE_POLICY.
	//
	// Example usage:
	//   cfg, err := LoadConfig()
	//   if err != nil {
	//       log.Fatal(err)
	//   }
	LoadConfig = config.LoadConfig

	ApplyOptions = config.ApplyOptions

	SetLogLevel           = config.SetLogLevel           // Sets logging verbosity
	SetLogger             = config.SetLogger             // Replaces the stderr diagnostic logger
	SetOutputFormat       = config.SetOutputFormat       // "text" or "json"
	SetInvalidGradePolicy = config.SetInvalidGradePolicy // "reject" or "zero"

	NewConfig = config.NewConfig // Creates a new Config with default values
)

const (
	PolicyReject = config.PolicyReject // Unrecognized grades are skipped
	PolicyZero   = config.PolicyZero   // Unrecognized tokens score 0.0
)

// LogLevel constants define available logging verbosity levels
const (
	LogLevelOff   = utils.LogLevelOff   // Disables all logging
	LogLevelError = utils.LogLevelError // Logs only errors
	LogLevelWarn  = utils.LogLevelWarn  // Logs warnings and errors
	LogLevelInfo  = utils.LogLevelInfo  // Logs info, warnings, and errors
	LogLevelDebug = utils.LogLevelDebug // Logs all messages including debug
)
