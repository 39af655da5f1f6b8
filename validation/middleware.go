package validation

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/errs"
)

type contextKey string

const sanitizedBodyKey contextKey = "sanitizedBody"

// maxBodySize caps request bodies accepted by the pipeline.
const maxBodySize = 1 << 20 // 1MB

// Pipeline wires the request-body pipeline into chi middleware:
// sanitize -> validate -> gate. Handlers downstream read the sanitized,
// normalized body from the request context.
type Pipeline struct {
	registry Registry
}

func NewPipeline(registry Registry) Pipeline {
	return Pipeline{registry: registry}
}

// Require returns middleware that applies the named rule set to the request
// body. On failure it writes the gate's 400 payload and stops the chain;
// persistence is never reached.
func (p Pipeline) Require(ruleSet string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
			if err := decoder.Decode(&body); err != nil {
				log.Warn().Err(err).Str("ruleSet", ruleSet).Msg("Failed to decode request body")
				writeJSON(w, http.StatusBadRequest, map[string]any{
					"success": false,
					"message": "Malformed request body",
				})
				return
			}

			Sanitize(body)

			if err := Gate(p.registry.Validate(ruleSet, body)); err != nil {
				validationErr := err.(*errs.ValidationErr)
				writeJSON(w, validationErr.StatusCode(), validationErr.Payload())
				return
			}

			ctx := context.WithValue(r.Context(), sanitizedBodyKey, body)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BodyFromContext returns the sanitized, validated body stored by Require.
func BodyFromContext(ctx context.Context) (map[string]any, bool) {
	body, ok := ctx.Value(sanitizedBodyKey).(map[string]any)
	return body, ok
}

// DecodeBody re-marshals the sanitized body into a typed document. Used by
// handlers to move from the pipeline's map form into a model struct.
func DecodeBody(ctx context.Context, target any) error {
	body, ok := BodyFromContext(ctx)
	if !ok {
		return errs.BadRequest("request body missing from context")
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return errs.NewInternalErrorWithCause("re-encoding sanitized body", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return errs.BadRequest("request body does not match expected shape")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("error writing validation response")
	}
}
