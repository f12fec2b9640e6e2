package calculator

import (
	"fmt"
)

// ErrorType represents the type of an error
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeInvalidInputKind
	ErrorTypeNoValidGrades
)

// Sentinels for errors.Is. Construction errors match exactly one of them.
var (
	ErrInvalidInputKind = &Error{Type: ErrorTypeInvalidInputKind, Message: "grades must be a string or a list"}
	ErrNoValidGrades    = &Error{Type: ErrorTypeNoValidGrades, Message: "no valid grades"}
)

// Error is returned when a calculator cannot be constructed.
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", e.TypeString(), e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.TypeString(), e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same type, so callers can test against the sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return e.Type == t.Type
}

func (e *Error) TypeString() string {
	switch e.Type {
	case ErrorTypeInvalidInputKind:
		return "InvalidInputKind"
	case ErrorTypeNoValidGrades:
		return "NoValidGrades"
	default:
		return "UnknownError"
	}
}

// LoggableFields returns key/value pairs for structured loggers.
func (e *Error) LoggableFields() []any {
	fields := []any{"error_type", e.TypeString(), "message", e.Message}
	if e.Err != nil {
		fields = append(fields, "cause", e.Err.Error())
	}
	return fields
}

// NewError creates a new Error
func NewError(errType ErrorType, message string, err error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// InvalidGradeToken records one grade that was not counted as given. It is a warning, not an error.
type InvalidGradeToken struct {
	Token any
	// Zeroed is set when the token was scored as 0.0 instead of being skipped.
	Zeroed bool
}

func (d InvalidGradeToken) String() string {
	if d.Zeroed {
		return fmt.Sprintf("Invalid grade: %v. Counting as 0.0", d.Token)
	}
	return fmt.Sprintf("Invalid grade: %v. Skipping", d.Token)
}
