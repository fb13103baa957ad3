// Package store reaches the backing Convex deployment through its function
// API. The store is a black box here: two mutations, no local consistency
// logic, upserts delegated to the functions themselves.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/donald-madangure/nutrifit.ai/internal/apperror"
	"github.com/donald-madangure/nutrifit.ai/internal/model"
)

// UserSync are the identity fields upserted on signup events.
type UserSync struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Image   string `json:"image,omitempty"`
	ClerkID string `json:"clerkId"`
}

// Store is the persistence surface the handlers consume.
type Store interface {
	// SyncUser upserts a user record keyed by the external identity id.
	SyncUser(ctx context.Context, u UserSync) error
	// CreatePlan persists a generated plan and returns its id.
	CreatePlan(ctx context.Context, p model.Plan) (string, error)
}

// Convex talks to a Convex deployment's HTTP function API.
type Convex struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// NewConvex creates a Convex store client for the given deployment URL.
func NewConvex(baseURL string, log *zap.Logger) *Convex {
	return &Convex{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// SyncUser runs the users:syncUser mutation.
func (c *Convex) SyncUser(ctx context.Context, u UserSync) error {
	_, err := c.mutation(ctx, "users:syncUser", u)
	return err
}

// CreatePlan runs the plans:createPlan mutation and returns the new plan id.
func (c *Convex) CreatePlan(ctx context.Context, p model.Plan) (string, error) {
	value, err := c.mutation(ctx, "plans:createPlan", p)
	if err != nil {
		return "", err
	}
	var id string
	if err := json.Unmarshal(value, &id); err != nil {
		return "", apperror.Upstream("store returned malformed plan id", err)
	}
	return id, nil
}

// mutationResponse is Convex's function API result envelope.
type mutationResponse struct {
	Status       string          `json:"status"`
	Value        json.RawMessage `json:"value"`
	ErrorMessage string          `json:"errorMessage"`
}

func (c *Convex) mutation(ctx context.Context, path string, args any) (json.RawMessage, error) {
	payload, err := json.Marshal(map[string]any{
		"path":   path,
		"args":   args,
		"format": "json",
	})
	if err != nil {
		return nil, apperror.Upstream("failed to encode mutation arguments", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/mutation", bytes.NewReader(payload))
	if err != nil {
		return nil, apperror.Upstream("failed to build mutation request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("mutation request failed", zap.String("path", path), zap.Error(err))
		return nil, apperror.Upstream("store unreachable", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.Upstream("failed to read store response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error("mutation rejected",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return nil, apperror.Upstream(fmt.Sprintf("store returned status %d", resp.StatusCode), nil)
	}

	var result mutationResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, apperror.Upstream("store returned malformed response", err)
	}
	if result.Status != "success" {
		c.log.Error("mutation failed",
			zap.String("path", path),
			zap.String("error", result.ErrorMessage))
		return nil, apperror.Upstream("store mutation failed: "+result.ErrorMessage, nil)
	}

	c.log.Info("mutation succeeded",
		zap.String("path", path),
		zap.Duration("duration", time.Since(start)))
	return result.Value, nil
}
