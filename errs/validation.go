package errs

import (
	"fmt"
	"net/http"
)

// FieldError describes one failed check for one request field. Message is the
// message of the first failing check in that field's chain; Value is the value
// the client sent.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value"`
}

// ValidationErr carries the full list of field errors for a rejected request.
// The rendered payload shape is fixed; existing frontends depend on it.
type ValidationErr struct {
	Errors []FieldError
}

func NewValidationErr(fieldErrors []FieldError) *ValidationErr {
	return &ValidationErr{Errors: fieldErrors}
}

func (e *ValidationErr) Error() string {
	return fmt.Sprintf("validation failed: %d invalid field(s)", len(e.Errors))
}

func (e *ValidationErr) StatusCode() int {
	return http.StatusBadRequest
}

// Payload returns the response body written by the gate:
// {"success":false,"message":"Validation failed","errors":[{field,message,value}...]}
func (e *ValidationErr) Payload() map[string]any {
	return map[string]any{
		"success": false,
		"message": "Validation failed",
		"errors":  e.Errors,
	}
}
