package validation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPipelineRequire(t *testing.T) {
	pipeline := NewPipeline(NewRegistry())

	reached := false
	var seenBody map[string]any
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		seenBody, _ = BodyFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := pipeline.Require(RuleSetContactCreate)(next)

	t.Run("invalid body halts before the handler", func(t *testing.T) {
		reached = false
		payload := `{"name":"J","email":"bad","subject":"Hi","message":"short","phone":"abc"}`
		req := httptest.NewRequest(http.MethodPost, "/api/contacts", strings.NewReader(payload))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if reached {
			t.Fatal("handler must not run when validation fails")
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}

		var response struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
			Errors  []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
				Value   any    `json:"value"`
			} `json:"errors"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
			t.Fatalf("response is not valid JSON: %v", err)
		}
		if response.Success {
			t.Error("expected success=false")
		}
		if response.Message != "Validation failed" {
			t.Errorf("expected message %q, got %q", "Validation failed", response.Message)
		}
		// name, email, subject, message, phone all fail
		if len(response.Errors) != 5 {
			t.Errorf("expected 5 field errors, got %d", len(response.Errors))
		}
	})

	t.Run("valid body reaches the handler sanitized", func(t *testing.T) {
		reached = false
		payload := `{"name":"Jo<script>alert(1)</script>hn","email":"Jo@Example.com","subject":"Project inquiry","message":"I would like to discuss a project."}`
		req := httptest.NewRequest(http.MethodPost, "/api/contacts", strings.NewReader(payload))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if !reached {
			t.Fatal("handler should run for a valid body")
		}
		if seenBody["name"] != "John" {
			t.Errorf("expected sanitized name %q, got %q", "John", seenBody["name"])
		}
		if seenBody["email"] != "jo@example.com" {
			t.Errorf("expected normalized email, got %q", seenBody["email"])
		}
	})

	t.Run("malformed JSON rejected", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodPost, "/api/contacts", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if reached {
			t.Fatal("handler must not run for malformed JSON")
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestDecodeBody(t *testing.T) {
	pipeline := NewPipeline(NewRegistry())

	type contactForm struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	var decoded contactForm
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := DecodeBody(r.Context(), &decoded); err != nil {
			t.Fatalf("DecodeBody failed: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	})

	payload := `{"name":"Jo","email":"jo@example.com","subject":"Project inquiry","message":"I would like to discuss a project."}`
	req := httptest.NewRequest(http.MethodPost, "/api/contacts", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	pipeline.Require(RuleSetContactCreate)(next).ServeHTTP(rec, req)

	if decoded.Name != "Jo" || decoded.Email != "jo@example.com" {
		t.Errorf("unexpected decode result: %+v", decoded)
	}
}
