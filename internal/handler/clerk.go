package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/donald-madangure/nutrifit.ai/internal/apperror"
	"github.com/donald-madangure/nutrifit.ai/internal/model"
	"github.com/donald-madangure/nutrifit.ai/internal/store"
)

// ClerkWebhook receives signed identity-provider events and syncs signups
// into the store. Failure responses are status-only: verification internals
// never reach the caller.
func (h *Handler) ClerkWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "unable to read request body", http.StatusBadRequest)
		return
	}

	evt, err := h.verifier.Verify(r.Header, body)
	if err != nil {
		h.log.Warn("webhook rejected", zap.Error(err))
		http.Error(w, http.StatusText(apperror.Status(err)), apperror.Status(err))
		return
	}

	switch evt.Type {
	case model.EventUserCreated, model.EventUserUpdated:
		if err := h.syncUser(r, evt.Data); err != nil {
			status := apperror.Status(err)
			h.log.Error("user sync failed", zap.String("event", evt.Type), zap.Error(err))
			http.Error(w, http.StatusText(status), status)
			return
		}
	default:
		// Unrecognized event types are valid; acknowledge and move on.
		h.log.Debug("ignoring webhook event", zap.String("event", evt.Type))
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Webhooks processed successfully"))
}

func (h *Handler) syncUser(r *http.Request, data json.RawMessage) error {
	var user model.WebhookUser
	if err := json.Unmarshal(data, &user); err != nil {
		return apperror.BadRequest("malformed user payload")
	}
	if err := h.validate.Struct(user); err != nil {
		// Covers the provider contract violation of an empty email list.
		return apperror.BadRequest("incomplete user payload")
	}

	sync := store.UserSync{
		Email:   user.EmailAddresses[0].EmailAddress,
		Name:    user.FullName(),
		Image:   user.ImageURL,
		ClerkID: user.ID,
	}
	if err := h.store.SyncUser(r.Context(), sync); err != nil {
		return err
	}

	h.log.Info("user synced", zap.String("clerk_id", user.ID))
	return nil
}
