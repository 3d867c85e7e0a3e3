package rail

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Topic identifies what a webhook event reports. Unknown topics must be
// logged and ignored, never treated as errors.
type Topic string

const (
	TopicTransferCreated   Topic = "transfer_created"
	TopicTransferCompleted Topic = "transfer_completed"
	TopicTransferFailed    Topic = "transfer_failed"
	TopicTransferCancelled Topic = "transfer_cancelled"
	TopicTransferReturned  Topic = "transfer_returned"
)

// WebhookEvent is one rail notification. Delivery is at-least-once: the
// rail may redeliver the same event, and events may arrive out of order.
type WebhookEvent struct {
	Id           string    `json:"id"`
	Topic        Topic     `json:"topic"`
	Timestamp    time.Time `json:"timestamp"`
	ResourceHref string    `json:"_links,omitempty"`
	ResourceId   string    `json:"resourceId"`
}

// TransferId extracts the rail transfer id the event refers to, preferring
// the explicit resource id over the href's last path segment.
func (e *WebhookEvent) TransferId() string {
	if e.ResourceId != "" {
		return e.ResourceId
	}
	href := strings.TrimSuffix(e.ResourceHref, "/")
	if i := strings.LastIndex(href, "/"); i >= 0 {
		return href[i+1:]
	}
	return href
}

// VerifySignature checks the rail's HMAC-SHA256 signature over the raw
// request body. The comparison is constant-time.
func VerifySignature(secret string, body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
