// Package model defines the typed boundary between external payloads and the
// rest of the application. Untrusted JSON is converted here or in the plan
// normalizer; it never flows past these types.
package model

import (
	"encoding/json"
	"strings"
)

// Webhook event types handled by the signup sync. Anything else is
// acknowledged and ignored.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
)

// WebhookEvent is the identity provider's event envelope. Data stays raw
// until the type discriminator selects a shape to decode it into.
type WebhookEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// EmailAddress is one entry of a webhook user's email list.
type EmailAddress struct {
	EmailAddress string `json:"email_address"`
}

// WebhookUser is the payload of user.created / user.updated events.
// The provider contract requires at least one email record; events
// without one are rejected as malformed.
type WebhookUser struct {
	ID             string         `json:"id" validate:"required"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	ImageURL       string         `json:"image_url"`
	EmailAddresses []EmailAddress `json:"email_addresses" validate:"required,min=1"`
}

// FullName joins the optional first and last names, trimming the join
// when either is absent.
func (u WebhookUser) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
