package calculator

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// Input is the raw grade list given to New. It is either a StringInput or a SequenceInput.
type Input interface {
	tokens() []any
}

// StringInput is a single string of grades separated by whitespace or commas, e.g. "A, B- C+".
type StringInput string

func (s StringInput) tokens() []any {
	fields := strings.FieldsFunc(string(s), func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	out := make([]any, len(fields))
	for i, f := range fields {
		out[i] = f
	}
	return out
}

// SequenceInput is an ordered list of grade values. Elements that are not strings are rejected
// during validation rather than failing the whole input.
type SequenceInput []any

func (s SequenceInput) tokens() []any {
	return s
}

// Strings builds a SequenceInput from grade strings.
func Strings(grades ...string) SequenceInput {
	out := make(SequenceInput, len(grades))
	for i, g := range grades {
		out[i] = g
	}
	return out
}

// InputOf adapts a dynamically typed value, such as decoded JSON, to an Input.
// Any slice or array is a sequence; its elements are checked one by one by New.
// Values that are neither a string nor a sequence fail with ErrInvalidInputKind.
func InputOf(v any) (Input, error) {
	switch val := v.(type) {
	case Input:
		return val, nil
	case string:
		return StringInput(val), nil
	case []string:
		return Strings(val...), nil
	case []any:
		return SequenceInput(val), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return StringInput(rv.String()), nil
	case reflect.Slice, reflect.Array:
		out := make(SequenceInput, rv.Len())
		for i := range out {
			elem := rv.Index(i)
			// Named string types such as Grade count as strings.
			if elem.Kind() == reflect.String {
				out[i] = elem.String()
				continue
			}
			out[i] = elem.Interface()
		}
		return out, nil
	}
	return nil, NewError(ErrorTypeInvalidInputKind, fmt.Sprintf("grades must be a string or a list, got %T", v), nil)
}
