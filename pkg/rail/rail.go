// Package rail defines the contract with the external payment rail: it
// executes asynchronous money movement between two funding sources and
// pushes webhook events on state changes.
package rail

import (
	"context"
	"fmt"
)

// Error is a typed failure from a rail call. Rail failures imply
// external-system uncertainty and are surfaced distinctly (the API maps
// them to 502), never silently swallowed.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("payment rail %s failed: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// CreateTransferParams describes a remote transfer between two funding
// sources. Amount is a decimal string with two places.
type CreateTransferParams struct {
	SourceFundingId      string
	DestinationFundingId string
	Amount               string
	Currency             string
}

// TransferStatus is the rail's own view of a transfer.
type TransferStatus string

const (
	StatusPending   TransferStatus = "pending"
	StatusProcessed TransferStatus = "processed"
	StatusFailed    TransferStatus = "failed"
	StatusCancelled TransferStatus = "cancelled"
	StatusReturned  TransferStatus = "returned"
)

// Rail is the payment rail contract consumed by the transfer
// reconciliation engine and the reconciliation sweep.
type Rail interface {
	// CreateTransfer starts a remote transfer and returns the rail's id.
	CreateTransfer(ctx context.Context, params CreateTransferParams) (string, error)

	// CancelTransfer cancels a remote transfer that has not started
	// processing.
	CancelTransfer(ctx context.Context, railTransferId string) error

	// GetTransferStatus reads the rail's current status for a transfer.
	// Used by the reconciliation sweep for transfers whose webhook never
	// arrived.
	GetTransferStatus(ctx context.Context, railTransferId string) (TransferStatus, error)
}
