// Package main provides a command-line interface for the GPA calculator.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	gpa "github.com/gabrieladeremi/cb-gpa-test"
	"github.com/gabrieladeremi/cb-gpa-test/calculator"
	"github.com/gabrieladeremi/cb-gpa-test/config"
	"github.com/gabrieladeremi/cb-gpa-test/utils"
)

// cmdFlags holds all command-line flags
type cmdFlags struct {
	gradesJSON   string
	outputFormat string
	logLevel     string
	policy       string
	schema       bool
	selfTest     bool
}

// parseFlags parses command-line flags
func parseFlags(args []string, stderr io.Writer) (*cmdFlags, []string, error) {
	flags := &cmdFlags{}
	fs := flag.NewFlagSet("gpa", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&flags.gradesJSON, "grades-json", "", "Grades as a JSON value, e.g. '[\"A\",\"B-\"]'")
	fs.StringVar(&flags.outputFormat, "format", "", "Output format (text, json); defaults to GPA_OUTPUT_FORMAT")
	fs.StringVar(&flags.logLevel, "log-level", "", "Log level (off, error, warn, info, debug); defaults to GPA_LOG_LEVEL")
	fs.StringVar(&flags.policy, "policy", "", "Invalid grade policy (reject, zero); defaults to GPA_INVALID_GRADE_POLICY")
	fs.BoolVar(&flags.schema, "schema", false, "Print the JSON schema of the json output and exit")
	fs.BoolVar(&flags.selfTest, "selftest", false, "Run the built-in fixtures and exit")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: gpa [flags] <name> [grades...]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return flags, fs.Args(), nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags, rest, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(flags, stderr)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return 1
	}

	switch {
	case flags.schema:
		schema, err := calculator.ReportSchema()
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "Error generating schema: %v\n", err)
			return 1
		}
		_, _ = fmt.Fprintln(stdout, string(schema))
		return 0
	case flags.selfTest:
		res := gpa.RunSelfTest(stdout, nil, configOptions(cfg)...)
		if !res.OK() {
			return 1
		}
		return 0
	}

	if len(rest) < 1 {
		_, _ = fmt.Fprintf(stderr, "Usage: gpa [flags] <name> [grades...]\n")
		return 2
	}

	grades, err := gradesArg(flags.gradesJSON, rest[1:])
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error reading grades: %v\n", err)
		return 2
	}

	c, err := gpa.Calculate(rest[0], grades, configOptions(cfg)...)
	if err != nil {
		printCalculateError(stderr, err)
		return 1
	}

	if err := printResult(stdout, c, cfg.OutputFormat); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error writing result: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads the environment and lets flags override it.
func loadConfig(flags *cmdFlags, stderr io.Writer) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		level, err := utils.ParseLogLevel(flags.logLevel)
		if err != nil {
			return nil, err
		}
		cfg.LogLevel = level
	}
	if flags.outputFormat != "" {
		cfg.OutputFormat = flags.outputFormat
	}
	if flags.policy != "" {
		cfg.InvalidGradePolicy = flags.policy
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	cfg.Logger = utils.NewLoggerWithWriter(stderr, cfg.LogLevel)
	return cfg, nil
}

func configOptions(cfg *config.Config) []config.ConfigOption {
	return []config.ConfigOption{
		config.SetLogLevel(cfg.LogLevel),
		config.SetLogger(cfg.Logger),
		config.SetInvalidGradePolicy(cfg.InvalidGradePolicy),
	}
}

// gradesArg returns the decoded -grades-json value, or the positional grades joined into one string.
func gradesArg(gradesJSON string, positional []string) (any, error) {
	if gradesJSON == "" {
		return strings.Join(positional, " "), nil
	}
	if len(positional) > 0 {
		return nil, errors.New("pass grades either as arguments or with -grades-json, not both")
	}
	var v any
	if err := json.Unmarshal([]byte(gradesJSON), &v); err != nil {
		return nil, fmt.Errorf("invalid -grades-json: %w", err)
	}
	return v, nil
}

func printCalculateError(stderr io.Writer, err error) {
	switch {
	case errors.Is(err, calculator.ErrInvalidInputKind):
		_, _ = fmt.Fprintf(stderr, "Grades must be a string or a list: %v\n", err)
	case errors.Is(err, calculator.ErrNoValidGrades):
		_, _ = fmt.Fprintf(stderr, "No valid grades given: %v\n", err)
	default:
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	}
}

func printResult(w io.Writer, c *gpa.Calculator, format string) error {
	if format != config.OutputFormatJSON {
		_, err := fmt.Fprintln(w, c.Announcement())
		return err
	}

	report := c.Report()
	if err := calculator.ValidateReport(&report); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
