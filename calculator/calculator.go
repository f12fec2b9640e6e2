package calculator

import (
	"fmt"

	"github.com/gabrieladeremi/cb-gpa-test/config"
	"github.com/gabrieladeremi/cb-gpa-test/utils"
)

// Calculator holds one student's validated grades. It is immutable after New
// and safe for concurrent use.
type Calculator struct {
	name        string
	grades      []Grade
	zeroed      int
	diagnostics []InvalidGradeToken
	gpa         float64
}

// New validates grades and returns a Calculator for name.
//
// Tokens that are not strings, or are strings missing from the grade scale, are
// reported through the configured logger and Diagnostics and are excluded from
// the average. With config.PolicyZero, every unrecognized token scores 0.0 instead.
// It fails with ErrInvalidInputKind when grades is nil and with ErrNoValidGrades
// when nothing is left to average.
func New(name string, grades Input, opts ...config.ConfigOption) (*Calculator, error) {
	cfg := config.NewConfig()
	config.ApplyOptions(cfg, opts...)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	logger := cfg.GetLogger()

	if grades == nil {
		err := NewError(ErrorTypeInvalidInputKind, "grades must be a string or a list, got <nil>", nil)
		logger.Debug("rejected grade input", err.LoggableFields()...)
		return nil, err
	}

	c := &Calculator{name: name}
	for _, tok := range grades.tokens() {
		c.accept(tok, cfg.InvalidGradePolicy, logger)
	}

	if len(c.grades)+c.zeroed == 0 {
		err := NewError(ErrorTypeNoValidGrades, fmt.Sprintf("no valid grades for %q", name), nil)
		logger.Debug("rejected grade input", err.LoggableFields()...)
		return nil, err
	}

	c.gpa = c.average()
	logger.Debug("computed gpa", "name", name, "grades", len(c.grades), "zeroed", c.zeroed, "gpa", c.gpa)
	return c, nil
}

func (c *Calculator) accept(tok any, policy string, logger utils.Logger) {
	s, isString := tok.(string)
	if isString && IsGrade(s) {
		c.grades = append(c.grades, Grade(s))
		return
	}

	d := InvalidGradeToken{Token: tok, Zeroed: policy == config.PolicyZero}
	if d.Zeroed {
		c.zeroed++
	}
	c.diagnostics = append(c.diagnostics, d)
	logger.Warn(d.String(), "grade", fmt.Sprintf("%v", tok), "name", c.name)
}

func (c *Calculator) average() float64 {
	var sum float64
	for _, g := range c.grades {
		p, _ := Points(g)
		sum += p
	}
	return Round(sum/float64(len(c.grades)+c.zeroed), 1)
}

// Name returns the student's name as given.
func (c *Calculator) Name() string {
	return c.name
}

// Grades returns the accepted grades in input order.
func (c *Calculator) Grades() []Grade {
	return append([]Grade(nil), c.grades...)
}

// Diagnostics returns one entry per token that was not counted as given, in input order.
func (c *Calculator) Diagnostics() []InvalidGradeToken {
	return append([]InvalidGradeToken(nil), c.diagnostics...)
}

// GPA returns the mean point value rounded to one decimal place.
func (c *Calculator) GPA() float64 {
	return c.gpa
}

// Announcement renders the GPA with exactly one decimal digit, e.g. "Andy scored an average of 4.0".
func (c *Calculator) Announcement() string {
	return fmt.Sprintf("%s scored an average of %.1f", c.name, c.gpa)
}
