// File: gpa.go

package gpa

import (
	"github.com/gabrieladeremi/cb-gpa-test/calculator"
)

type (
	Calculator        = calculator.Calculator
	Grade             = calculator.Grade
	Input             = calculator.Input
	StringInput       = calculator.StringInput
	SequenceInput     = calculator.SequenceInput
	InvalidGradeToken = calculator.InvalidGradeToken
	Report            = calculator.Report
)

var (
	ErrInvalidInputKind = calculator.ErrInvalidInputKind
	ErrNoValidGrades    = calculator.ErrNoValidGrades
)

// Calculate accepts grades as a string, a []string, a []any or an Input and
// returns the validated calculator for name.
//
// Example usage:
//
//	c, err := Calculate("Dan", "A A- B-")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(c.Announcement()) // Dan scored an average of 3.5
func Calculate(name string, grades any, opts ...ConfigOption) (*Calculator, error) {
	in, err := calculator.InputOf(grades)
	if err != nil {
		return nil, err
	}
	return calculator.New(name, in, opts...)
}

// Strings builds a SequenceInput from grade strings.
func Strings(grades ...string) SequenceInput {
	return calculator.Strings(grades...)
}
