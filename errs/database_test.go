package errs

import (
	"errors"
	"net/http"
	"testing"

	"gorm.io/gorm"
)

func TestNewDatabaseErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		cause      error
		wantStatus int
		wantCheck  func(error) bool
	}{
		{
			name:       "duplicated key sentinel maps to conflict",
			cause:      gorm.ErrDuplicatedKey,
			wantStatus: http.StatusConflict,
			wantCheck:  IsConflict,
		},
		{
			name:       "record not found sentinel maps to 404",
			cause:      gorm.ErrRecordNotFound,
			wantStatus: http.StatusNotFound,
			wantCheck:  IsNotFound,
		},
		{
			name:       "driver duplicate key message maps to conflict",
			cause:      errors.New(`duplicate key value violates unique constraint "idx_skills_name"`),
			wantStatus: http.StatusConflict,
			wantCheck:  IsAlreadyExists,
		},
		{
			name:       "connection failure maps to 503",
			cause:      errors.New("dial tcp 127.0.0.1:5432: connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantCheck:  func(err error) bool { return errors.Is(err, ErrDatabaseConnection) },
		},
		{
			name:       "unknown cause maps to 500",
			cause:      errors.New("something unexpected"),
			wantStatus: http.StatusInternalServerError,
			wantCheck:  func(err error) bool { return errors.Is(err, ErrDatabaseQuery) },
		},
		{
			name:       "nil cause maps to 500",
			cause:      nil,
			wantStatus: http.StatusInternalServerError,
			wantCheck:  func(err error) bool { return errors.Is(err, ErrDatabaseQuery) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := NewDatabaseError("create", "skill", tt.cause)
			if apiErr.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", apiErr.StatusCode, tt.wantStatus)
			}
			if !tt.wantCheck(apiErr) {
				t.Errorf("classification check failed for %v", apiErr)
			}
		})
	}
}

func TestNewDatabaseErrorRetainsCause(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	apiErr := NewDatabaseError("create", "skill", cause)
	if apiErr.Cause != cause {
		t.Errorf("cause not retained: %v", apiErr.Cause)
	}
	if apiErr.Details != "Failed to create skill" {
		t.Errorf("details = %q", apiErr.Details)
	}
}

func TestValidationErrPayload(t *testing.T) {
	verr := NewValidationErr([]FieldError{
		{Field: "email", Message: "Please provide a valid email", Value: "nope"},
	})

	if verr.StatusCode() != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", verr.StatusCode())
	}

	payload := verr.Payload()
	if payload["success"] != false {
		t.Error("payload success must be false")
	}
	if payload["message"] != "Validation failed" {
		t.Errorf("payload message = %v", payload["message"])
	}
	fieldErrors, ok := payload["errors"].([]FieldError)
	if !ok || len(fieldErrors) != 1 {
		t.Fatalf("payload errors = %v", payload["errors"])
	}
	if fieldErrors[0].Field != "email" {
		t.Errorf("field = %q", fieldErrors[0].Field)
	}
}

func TestApiErrUnwrap(t *testing.T) {
	err := NewAlreadyExists("skill")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Error("expected errors.Is to see the sentinel through Unwrap")
	}
	if !IsConflict(err) {
		t.Error("expected IsConflict for already-exists error")
	}
	if IsNotFound(err) {
		t.Error("IsNotFound must not match a conflict")
	}
}
