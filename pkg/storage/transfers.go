package storage

import (
	"context"
	"time"

	"github.com/horizonfin/banking/pkg/models"
)

// TransferReader defines the interface for reading transfers.
type TransferReader interface {
	// GetTransfer retrieves a transfer by its ID.
	GetTransfer(ctx context.Context, transferID string) (*models.Transfer, error)

	// GetTransferByRailId retrieves the transfer correlated with a payment
	// rail transfer id. Returns ErrNotFound for ids this system never
	// created.
	GetTransferByRailId(ctx context.Context, railTransferID string) (*models.Transfer, error)

	// ListTransfersByUserID retrieves all transfers initiated by a user.
	ListTransfersByUserID(ctx context.Context, userID string) ([]models.Transfer, error)

	// GetStuckTransfers retrieves transfers sitting in PROCESSING longer
	// than maxAge, i.e. transfers whose rail webhook never arrived.
	GetStuckTransfers(ctx context.Context, maxAge time.Duration) ([]models.Transfer, error)
}

// TransferManager defines the interface for creating transfers and driving
// their state machine. Every status write is a conditional update; callers
// never read-modify-write a transfer status.
type TransferManager interface {
	// CreateTransfer persists a PENDING transfer together with its local
	// transaction leg(s) in a single atomic write. Either everything is
	// created or nothing is.
	CreateTransfer(ctx context.Context, transfer *models.Transfer, legs []models.Transaction) (*models.Transfer, error)

	// TransitionTransfer conditionally moves the transfer into target,
	// mirroring the new status onto its leg(s). When railTransferID is
	// non-empty it is recorded on the transfer in the same write.
	// Returns ErrInvalidTransition when the current status is not a valid
	// predecessor of target.
	TransitionTransfer(ctx context.Context, transferID string, target models.TransferStatus, railTransferID string) (*models.Transfer, error)
}

// TransferStore combines the reader and manager interfaces.
type TransferStore interface {
	TransferReader
	TransferManager
}
