// Package scheduler decouples webhook receipt from webhook processing:
// the HTTP handler acknowledges the rail immediately and hands the event
// to a queue consumed by the webhook lambda.
package scheduler

import (
	"context"

	"github.com/horizonfin/banking/pkg/rail"
)

// EventQueue defines the interface for enqueueing rail webhook events for
// asynchronous processing. Delivery is at-least-once; consumers must treat
// redelivered events as replays.
type EventQueue interface {
	// EnqueueWebhookEvent hands a verified rail event to the queue.
	EnqueueWebhookEvent(ctx context.Context, event *rail.WebhookEvent) error
}
