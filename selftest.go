package gpa

import (
	"fmt"
	"io"
	"strings"
)

// Fixture is one known-good calculation.
type Fixture struct {
	Name         string
	Grades       []string
	GPA          float64
	Announcement string
}

// SelfTestResult counts checks, two per fixture.
type SelfTestResult struct {
	Passed int
	Failed int
}

// OK reports whether every check passed.
func (r SelfTestResult) OK() bool {
	return r.Failed == 0
}

// Fixtures returns the built-in cases exercised by RunSelfTest.
func Fixtures() []Fixture {
	return []Fixture{
		{Name: "Andy", Grades: []string{"A"}, GPA: 4.0, Announcement: "Andy scored an average of 4.0"},
		{Name: "Beryl", Grades: []string{"A", "B", "C"}, GPA: 3.0, Announcement: "Beryl scored an average of 3.0"},
		{Name: "Chris", Grades: []string{"B-", "C+"}, GPA: 2.5, Announcement: "Chris scored an average of 2.5"},
		{Name: "Dan", Grades: []string{"A", "A-", "B-"}, GPA: 3.5, Announcement: "Dan scored an average of 3.5"},
		{Name: "Emma", Grades: []string{"A", "B+", "F"}, GPA: 2.4, Announcement: "Emma scored an average of 2.4"},
		{Name: "Frida", Grades: []string{"E", "E-"}, GPA: 0.2, Announcement: "Frida scored an average of 0.2"},
		{Name: "Gary", Grades: []string{"U", "U", "B+"}, GPA: 0.4, Announcement: "Gary scored an average of 0.4"},
	}
}

// RunSelfTest runs fixtures (Fixtures() when none are given) and writes a
// pass/fail line per check to w.
func RunSelfTest(w io.Writer, fixtures []Fixture, opts ...ConfigOption) SelfTestResult {
	if fixtures == nil {
		fixtures = Fixtures()
	}

	var res SelfTestResult
	rule := strings.Repeat("-", 10)
	for _, f := range fixtures {
		fmt.Fprintf(w, "%s %s %s\n", rule, f.Name, rule)

		c, err := Calculate(f.Name, f.Grades, opts...)
		if err != nil {
			fmt.Fprintf(w, "❌ ERROR: %v\n\n", err)
			res.Failed += 2
			continue
		}

		res.check(w, "GPA", fmt.Sprintf("%.1f", f.GPA), fmt.Sprintf("%.1f", c.GPA()))
		res.check(w, "ANNOUNCEMENT", f.Announcement, c.Announcement())
		fmt.Fprintln(w)
	}
	return res
}

func (r *SelfTestResult) check(w io.Writer, method, expected, got string) {
	if expected == got {
		r.Passed++
		fmt.Fprintf(w, "✅ %s: %s\n", method, got)
		return
	}
	r.Failed++
	fmt.Fprintf(w, "❌ %s: expected '%s' but got '%s'\n", method, expected, got)
}
