// Package config handles application configuration via environment variables.
package config

import (
	"log"
	"os"
	"time"
)

// Config holds all configurable values for the app.
type Config struct {
	Env  string
	Addr string

	// ClerkWebhookSecret signs inbound identity-provider webhooks. Required.
	ClerkWebhookSecret string

	// VapiSecret authorizes tool calls from the voice platform. When empty
	// the authorization check on the generate-program route is skipped.
	VapiSecret string

	// VapiWorkflowID identifies the voice workflow started by clients.
	VapiWorkflowID string

	GroqAPIKey  string
	GroqBaseURL string
	GroqModel   string
	LLMTimeout  time.Duration

	// ConvexURL is the deployment URL of the backing store.
	ConvexURL string
}

// Load reads environment variables and populates a Config struct.
func Load() *Config {
	llmTimeout, err := time.ParseDuration(getEnv("LLM_TIMEOUT", "60s"))
	if err != nil {
		log.Panicf("Invalid LLM_TIMEOUT: %v", err)
	}

	return &Config{
		Env:                getEnv("ENV", "development"),
		Addr:               getEnv("ADDR", ":8080"),
		ClerkWebhookSecret: getEnv("CLERK_WEBHOOK_SECRET", ""),
		VapiSecret:         getEnv("VAPI_SECRET", ""),
		VapiWorkflowID:     getEnv("VAPI_WORKFLOW_ID", ""),
		GroqAPIKey:         getEnv("GROQ_API_KEY", ""),
		GroqBaseURL:        getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqModel:          getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		LLMTimeout:         llmTimeout,
		ConvexURL:          getEnv("CONVEX_URL", "http://localhost:3210"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
