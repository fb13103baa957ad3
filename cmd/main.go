// Package main provides the entry point for the coaching backend.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/donald-madangure/nutrifit.ai/internal/config"
	"github.com/donald-madangure/nutrifit.ai/internal/handler"
	"github.com/donald-madangure/nutrifit.ai/internal/llm"
	"github.com/donald-madangure/nutrifit.ai/internal/logger"
	"github.com/donald-madangure/nutrifit.ai/internal/store"
	"github.com/donald-madangure/nutrifit.ai/internal/webhook"
)

// Run is the testable entrypoint for the application.
func Run(ctx context.Context) error {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	log.Info("Starting NutriFit backend")

	verifier, err := webhook.NewVerifier(cfg.ClerkWebhookSecret, log)
	if err != nil {
		log.Error("webhook verifier unavailable", zap.Error(err))
		return err
	}
	if cfg.VapiSecret == "" {
		// Known permissive fallback: without a secret the tool-call route
		// accepts any caller.
		log.Warn("VAPI_SECRET not configured; tool-call authorization disabled")
	}

	st := store.NewConvex(cfg.ConvexURL, log)
	completer := llm.NewClient(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel, cfg.LLMTimeout, log)
	validate := validator.New()

	h := handler.New(log, verifier, st, completer, validate, cfg.VapiSecret)

	r := chi.NewRouter()
	r.Get("/healthz", h.Healthz)
	r.Post("/clerk-webhook", h.ClerkWebhook)
	r.Post("/vapi/generate-program", h.GenerateProgram)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down server")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := Run(ctx); err != nil {
		os.Exit(1)
	}
}
