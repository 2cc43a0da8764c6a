// SPDX-License-Identifier: Apache-2.0

package validators

// ValidationError carries the field-name-to-message mapping produced by
// payload validation. It is distinct from infrastructure failures: handlers
// match it with errors.As and render Fields as a 400 response body, while all
// other errors go through the generic status mapper.
type ValidationError struct {
	// Fields maps the JSON field name of each invalid field to a
	// human-readable message describing the problem.
	Fields map[string]string
}

// Error implements the error interface. The summary intentionally omits the
// per-field details; those are carried in Fields for the response body.
func (e *ValidationError) Error() string {
	return "validation error"
}

// newValidationError constructs a ValidationError for the given field map.
func newValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
