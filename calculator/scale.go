// Package calculator turns a student's letter grades into a grade point average.
package calculator

// Grade is a letter grade token such as "A-" or "B+". Tokens are case-sensitive.
type Grade string

const (
	MinPoints = -1.0
	MaxPoints = 4.0
)

// scaleOrder lists the alphabet in table order.
var scaleOrder = []Grade{
	"A", "A-",
	"B+", "B", "B-",
	"C+", "C", "C-",
	"D+", "D", "D-",
	"E", "E+", "E-",
	"F", "U",
}

var gradePoints = map[Grade]float64{
	"A": 4.0, "A-": 3.7,
	"B+": 3.3, "B": 3.0, "B-": 2.7,
	"C+": 2.3, "C": 2.0, "C-": 1.7,
	"D+": 1.3, "D": 1.0, "D-": 0.7,
	"E": 0.2, "E+": 0.5, "E-": 0.1,
	"F": 0.0, "U": -1.0,
}

// Points returns the point value of g and whether g is on the scale.
func Points(g Grade) (float64, bool) {
	p, ok := gradePoints[g]
	return p, ok
}

// IsGrade reports whether token names a grade on the scale.
func IsGrade(token string) bool {
	_, ok := gradePoints[Grade(token)]
	return ok
}

// Scale returns every recognized grade in table order.
func Scale() []Grade {
	return append([]Grade(nil), scaleOrder...)
}
