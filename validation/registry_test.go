package validation

import (
	"testing"

	"github.com/rpupo63/portfolio-backend/errs"
)

func fieldNames(fieldErrors []errs.FieldError) []string {
	names := make([]string, len(fieldErrors))
	for i, fe := range fieldErrors {
		names[i] = fe.Field
	}
	return names
}

func containsField(fieldErrors []errs.FieldError, field string) bool {
	for _, fe := range fieldErrors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func TestValidateProjectCreate(t *testing.T) {
	reg := NewRegistry()

	t.Run("valid payload passes", func(t *testing.T) {
		body := map[string]any{
			"title":            "Portfolio Site",
			"description":      "A personal portfolio site built from scratch.",
			"shortDescription": "A personal portfolio site.",
			"technologies":     []any{"go", "postgres"},
			"category":         "web",
		}
		if got := reg.Validate(RuleSetProjectCreate, body); len(got) != 0 {
			t.Fatalf("expected no errors, got %v", got)
		}
	})

	t.Run("three invalid fields yield exactly three errors", func(t *testing.T) {
		body := map[string]any{
			"title":            "ab", // too short
			"description":      "A long enough description for the project.",
			"shortDescription": "Short but valid text.",
			"technologies":     []any{}, // empty
			"category":         "game", // not in enum
		}
		got := reg.Validate(RuleSetProjectCreate, body)
		if len(got) != 3 {
			t.Fatalf("expected 3 errors, got %d: %v", len(got), fieldNames(got))
		}
		for _, field := range []string{"title", "technologies", "category"} {
			if !containsField(got, field) {
				t.Errorf("expected error for field %q, got %v", field, fieldNames(got))
			}
		}
	})

	t.Run("missing fields are reported", func(t *testing.T) {
		got := reg.Validate(RuleSetProjectCreate, map[string]any{})
		if len(got) != 5 {
			t.Fatalf("expected 5 errors for empty body, got %d: %v", len(got), fieldNames(got))
		}
	})
}

func TestValidateContactCreate(t *testing.T) {
	reg := NewRegistry()

	t.Run("all invalid fields reported together", func(t *testing.T) {
		// name too short, bad email, subject too short, message too short,
		// phone malformed: exactly 5 entries, and nothing persists downstream.
		body := map[string]any{
			"name":    "J",
			"email":   "bad",
			"subject": "Hi",
			"message": "short",
			"phone":   "abc",
		}
		got := reg.Validate(RuleSetContactCreate, body)
		if len(got) != 5 {
			t.Fatalf("expected 5 errors, got %d: %v", len(got), fieldNames(got))
		}
		for _, field := range []string{"name", "email", "subject", "message", "phone"} {
			if !containsField(got, field) {
				t.Errorf("expected error for field %q", field)
			}
		}
	})

	t.Run("optional fields skipped when absent", func(t *testing.T) {
		body := map[string]any{
			"name":    "Jo",
			"email":   "jo@example.com",
			"subject": "Project inquiry",
			"message": "I would like to discuss a project.",
		}
		if got := reg.Validate(RuleSetContactCreate, body); len(got) != 0 {
			t.Fatalf("expected no errors, got %v", got)
		}
	})

	t.Run("optional fields validated when present", func(t *testing.T) {
		body := map[string]any{
			"name":        "Jo",
			"email":       "jo@example.com",
			"subject":     "Project inquiry",
			"message":     "I would like to discuss a project.",
			"phone":       "+1 (555) 123-4567",
			"projectType": "web-app",
		}
		if got := reg.Validate(RuleSetContactCreate, body); len(got) != 0 {
			t.Fatalf("expected no errors, got %v", got)
		}

		body["projectType"] = "spaceship"
		got := reg.Validate(RuleSetContactCreate, body)
		if len(got) != 1 || got[0].Field != "projectType" {
			t.Fatalf("expected single projectType error, got %v", got)
		}
	})

	t.Run("email normalized downstream", func(t *testing.T) {
		body := map[string]any{
			"name":    "Jo",
			"email":   "  Jo@Example.COM ",
			"subject": "Project inquiry",
			"message": "I would like to discuss a project.",
		}
		if got := reg.Validate(RuleSetContactCreate, body); len(got) != 0 {
			t.Fatalf("expected no errors, got %v", got)
		}
		if body["email"] != "jo@example.com" {
			t.Errorf("email not normalized, got %q", body["email"])
		}
	})

	t.Run("strings trimmed downstream", func(t *testing.T) {
		body := map[string]any{
			"name":    "  Jo  ",
			"email":   "jo@example.com",
			"subject": "Project inquiry",
			"message": "I would like to discuss a project.",
		}
		if got := reg.Validate(RuleSetContactCreate, body); len(got) != 0 {
			t.Fatalf("expected no errors, got %v", got)
		}
		if body["name"] != "Jo" {
			t.Errorf("name not trimmed, got %q", body["name"])
		}
	})
}

func TestValidateUserRegister(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name       string
		password   string
		wantErrors int
	}{
		{"strong password", "Secret123", 0},
		{"too short", "Ab1", 1},
		{"missing uppercase", "secret123", 1},
		{"missing digit", "SecretPass", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := map[string]any{
				"name":     "Jo Smith",
				"email":    "jo@example.com",
				"password": tt.password,
			}
			got := reg.Validate(RuleSetUserRegister, body)
			if len(got) != tt.wantErrors {
				t.Errorf("expected %d errors, got %d: %v", tt.wantErrors, len(got), got)
			}
		})
	}
}

func TestValidateSkillCreate(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name       string
		body       map[string]any
		wantFields []string
	}{
		{
			name: "valid",
			body: map[string]any{
				"name": "Go", "category": "backend",
				"proficiency": float64(90), "experience": "advanced",
			},
		},
		{
			name: "proficiency out of range",
			body: map[string]any{
				"name": "Go", "category": "backend",
				"proficiency": float64(101), "experience": "advanced",
			},
			wantFields: []string{"proficiency"},
		},
		{
			name: "fractional proficiency rejected",
			body: map[string]any{
				"name": "Go", "category": "backend",
				"proficiency": 50.5, "experience": "advanced",
			},
			wantFields: []string{"proficiency"},
		},
		{
			name: "bad enum values",
			body: map[string]any{
				"name": "Go", "category": "cooking",
				"proficiency": float64(50), "experience": "guru",
			},
			wantFields: []string{"category", "experience"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reg.Validate(RuleSetSkillCreate, tt.body)
			if len(got) != len(tt.wantFields) {
				t.Fatalf("expected %d errors, got %d: %v", len(tt.wantFields), len(got), fieldNames(got))
			}
			for _, field := range tt.wantFields {
				if !containsField(got, field) {
					t.Errorf("expected error for field %q", field)
				}
			}
		})
	}
}

func TestValidateFirstFailurePerField(t *testing.T) {
	reg := NewRegistry()

	// Both checks on the same field would fail; only the first message is
	// reported.
	rule := FieldRule{Field: "x", Checks: []Check{
		TrimmedLength(5, 10, "first message"),
		OneOf([]string{"abcdef"}, "second message"),
	}}
	reg["test.rule"] = []FieldRule{rule}

	got := reg.Validate("test.rule", map[string]any{"x": "ab"})
	if len(got) != 1 {
		t.Fatalf("expected 1 error, got %d", len(got))
	}
	if got[0].Message != "first message" {
		t.Errorf("expected first failing check's message, got %q", got[0].Message)
	}
}

func TestValidateUnknownRuleSet(t *testing.T) {
	reg := NewRegistry()
	got := reg.Validate("nope", map[string]any{})
	if len(got) != 1 {
		t.Fatalf("expected 1 error for unknown rule set, got %d", len(got))
	}
}

func TestGate(t *testing.T) {
	if err := Gate(nil); err != nil {
		t.Errorf("empty error list must pass the gate, got %v", err)
	}

	err := Gate([]errs.FieldError{{Field: "title", Message: "too short", Value: "ab"}})
	if err == nil {
		t.Fatal("non-empty error list must halt the pipeline")
	}
	validationErr, ok := err.(*errs.ValidationErr)
	if !ok {
		t.Fatalf("expected *errs.ValidationErr, got %T", err)
	}
	if validationErr.StatusCode() != 400 {
		t.Errorf("expected status 400, got %d", validationErr.StatusCode())
	}
	payload := validationErr.Payload()
	if payload["success"] != false || payload["message"] != "Validation failed" {
		t.Errorf("unexpected payload shape: %v", payload)
	}
}
