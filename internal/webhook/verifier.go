// Package webhook verifies signed identity-provider webhooks and decodes
// them into typed events.
package webhook

import (
	"encoding/json"
	"net/http"

	svix "github.com/svix/svix-webhooks/go"
	"go.uber.org/zap"

	"github.com/donald-madangure/nutrifit.ai/internal/apperror"
	"github.com/donald-madangure/nutrifit.ai/internal/model"
)

// Headers the provider must send. Checked before any cryptographic work.
var requiredHeaders = []string{"svix-id", "svix-timestamp", "svix-signature"}

// Verifier checks webhook signatures against the configured signing secret.
type Verifier struct {
	wh  *svix.Webhook
	log *zap.Logger
}

// NewVerifier builds a Verifier. An empty secret is fatal misconfiguration;
// the webhook route must not come up without one.
func NewVerifier(secret string, log *zap.Logger) (*Verifier, error) {
	if secret == "" {
		return nil, apperror.Config("missing CLERK_WEBHOOK_SECRET")
	}
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, apperror.Config("invalid CLERK_WEBHOOK_SECRET: " + err.Error())
	}
	return &Verifier{wh: wh, log: log}, nil
}

// Verify validates transport headers and the body signature, then decodes
// the typed event. The raw verification error is logged, never returned in a
// form safe to echo beyond its generic message.
func (v *Verifier) Verify(header http.Header, body []byte) (*model.WebhookEvent, error) {
	for _, h := range requiredHeaders {
		if header.Get(h) == "" {
			return nil, apperror.BadRequest("missing webhook signature headers")
		}
	}

	if err := v.wh.Verify(body, header); err != nil {
		v.log.Error("webhook signature verification failed", zap.Error(err))
		return nil, apperror.Verification(err)
	}

	var evt model.WebhookEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		return nil, apperror.BadRequest("malformed event payload")
	}
	return &evt, nil
}
