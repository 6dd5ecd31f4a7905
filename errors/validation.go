package errors

import "strings"

// ValidationErrors collects per-field validation failures so that a single
// pass can report all of them at once.
type ValidationErrors struct {
	fields []fieldError
}

type fieldError struct {
	field  string
	reason string
}

// ValidationErrs returns an empty collector.
func ValidationErrs() *ValidationErrors {
	return &ValidationErrors{}
}

// Add records a failure for the named field.
func (v *ValidationErrors) Add(field, reason string) {
	v.fields = append(v.fields, fieldError{field: field, reason: reason})
}

// Err returns the collector as an error, or nil when nothing was recorded.
func (v *ValidationErrors) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return v
}

func (v *ValidationErrors) Error() string {
	parts := make([]string, len(v.fields))
	for i, f := range v.fields {
		parts[i] = f.field + " " + f.reason
	}
	return strings.Join(parts, "; ")
}
