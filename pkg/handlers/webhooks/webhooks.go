package webhooks

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/horizonfin/banking/pkg/api"
	"github.com/horizonfin/banking/pkg/rail"
	"github.com/horizonfin/banking/pkg/scheduler"
	"github.com/horizonfin/banking/pkg/transfer"
)

// SignatureHeader carries the rail's HMAC-SHA256 hex signature over the
// raw request body.
const SignatureHeader = "X-Request-Signature-SHA-256"

// maxBodyBytes caps webhook payload size. Rail events are small; anything
// larger is not a legitimate event.
const maxBodyBytes = 64 * 1024

// Handler receives payment-rail webhook events. Verified events are queued
// for asynchronous processing; when no queue is configured they are applied
// inline.
type Handler struct {
	Secret  string
	Queue   scheduler.EventQueue
	Service transfer.Service
	Logger  *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(secret string, queue scheduler.EventQueue, service transfer.Service, logger *slog.Logger) *Handler {
	return &Handler{Secret: secret, Queue: queue, Service: service, Logger: logger}
}

// HandleRailEvent verifies and accepts one webhook delivery. The signature
// is checked over the raw body before any parsing. The rail retries
// non-2xx responses, so only infrastructure failures are surfaced as
// errors; malformed-but-authentic events are acknowledged and dropped.
func (h *Handler) HandleRailEvent(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationError, "failed to read request body")
		return
	}

	if !rail.VerifySignature(h.Secret, body, r.Header.Get(SignatureHeader)) {
		h.Logger.Warn("rejected webhook with bad signature", "remote_addr", r.RemoteAddr)
		api.WriteError(w, http.StatusUnauthorized, api.CodeValidationError, "invalid signature")
		return
	}

	var event rail.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		h.Logger.Warn("dropping malformed webhook payload", "error", err)
		w.WriteHeader(http.StatusAccepted)
		return
	}

	if h.Queue != nil {
		if err := h.Queue.EnqueueWebhookEvent(r.Context(), &event); err != nil {
			h.Logger.Error("failed to enqueue webhook event", "event_id", event.Id, "error", err)
			api.WriteError(w, http.StatusInternalServerError, api.CodeInternalError, "failed to accept event")
			return
		}
	} else if err := h.Service.HandleWebhook(r.Context(), event); err != nil {
		h.Logger.Error("failed to handle webhook event", "event_id", event.Id, "error", err)
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternalError, "failed to process event")
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
