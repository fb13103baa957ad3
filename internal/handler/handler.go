// Package handler contains HTTP handlers for the webhook and tool-call API.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/donald-madangure/nutrifit.ai/internal/llm"
	"github.com/donald-madangure/nutrifit.ai/internal/store"
	"github.com/donald-madangure/nutrifit.ai/internal/webhook"
)

// Handler wraps HTTP handlers with logger and collaborators.
type Handler struct {
	log        *zap.Logger
	verifier   *webhook.Verifier
	store      store.Store
	llm        llm.Completer
	validate   *validator.Validate
	vapiSecret string
}

// New creates a new Handler instance. An empty vapiSecret disables the
// tool-call authorization check.
func New(log *zap.Logger, v *webhook.Verifier, s store.Store, c llm.Completer, validate *validator.Validate, vapiSecret string) *Handler {
	return &Handler{
		log:        log,
		verifier:   v,
		store:      s,
		llm:        c,
		validate:   validate,
		vapiSecret: vapiSecret,
	}
}

// Healthz is a simple health check endpoint.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// ErrorResponse is the JSON error body returned on the tool-call route.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("unable to write response stream", zap.Error(err))
	}
}
