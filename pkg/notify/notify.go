// Package notify pushes transfer and sync updates to connected clients
// over WebSockets.
package notify

import (
	"context"

	"github.com/horizonfin/banking/pkg/models"
)

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeTransferUpdate is for messages announcing a transfer
	// status change.
	MessageTypeTransferUpdate MessageType = "transferUpdate"
	// MessageTypeSyncComplete is for messages announcing a finished sync
	// pass for a bank connection.
	MessageTypeSyncComplete MessageType = "syncComplete"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// TransferUpdatePayload is the payload for a transferUpdate message.
type TransferUpdatePayload struct {
	TransferId      string                `json:"transfer_id"`
	UserId          string                `json:"user_id"`
	RecipientUserId string                `json:"recipient_user_id,omitempty"`
	Kind            models.TransferKind   `json:"kind"`
	Status          models.TransferStatus `json:"status"`
	AmountCents     int64                 `json:"amount_cents"`
	Currency        string                `json:"currency"`
}

// SyncCompletePayload is the payload for a syncComplete message.
type SyncCompletePayload struct {
	BankConnectionId string `json:"bank_connection_id"`
	Added            int    `json:"added"`
	Modified         int    `json:"modified"`
	Removed          int    `json:"removed"`
}

// Publisher defines the interface for publishing messages to WebSocket clients.
type Publisher interface {
	Publish(ctx context.Context, message Message) error
}

// ConnectionManager defines the interface for managing WebSocket connections.
type ConnectionManager interface {
	AddConnection(ctx context.Context, connectionID string) error
	RemoveConnection(ctx context.Context, connectionID string) error
}

// NoOpPublisher is a publisher that does nothing.
type NoOpPublisher struct{}

// Publish does nothing.
func (p *NoOpPublisher) Publish(ctx context.Context, message Message) error {
	return nil
}
