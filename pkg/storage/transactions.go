package storage

import (
	"context"
	"time"

	"github.com/horizonfin/banking/pkg/models"
)

// ListTransactionsParams filters a transaction listing.
type ListTransactionsParams struct {
	BankConnectionId string
	Status           models.TransactionStatus
	StartDate        time.Time
	EndDate          time.Time
	Limit            int32
	Offset           int32
}

// SyncPage is one durably-appliable page of provider deltas. Upserts are
// keyed by the provider transaction id, so re-applying the same page is
// idempotent.
type SyncPage struct {
	Upserts    []models.Transaction
	RemovedIds []string
	NextCursor string
}

// TransactionReader defines the interface for reading transaction data.
type TransactionReader interface {
	// GetTransaction retrieves a transaction by its ID.
	GetTransaction(ctx context.Context, txID string) (*models.Transaction, error)

	// ListTransactions retrieves transactions for a bank connection,
	// newest first, honoring the filter parameters.
	ListTransactions(ctx context.Context, params ListTransactionsParams) ([]models.Transaction, error)

	// ListPendingTransferLegs retrieves locally synthesized transfer legs
	// still PENDING or PROCESSING for a connection that have no provider
	// transaction id (not yet visible in the provider feed).
	ListPendingTransferLegs(ctx context.Context, bankConnectionID string) ([]models.Transaction, error)
}

// SyncStore defines the privileged interface used by the sync engine. The
// cursor is committed in the same operation that finishes the page, never
// before.
type SyncStore interface {
	// ApplySyncPage writes a page's upserts and removals, then advances the
	// connection's cursor and last-synced timestamp. The cursor write is
	// conditional on the sync lock still being held.
	ApplySyncPage(ctx context.Context, bankConnectionID string, page SyncPage) error
}

// TransactionStore combines the transaction interfaces.
type TransactionStore interface {
	TransactionReader
	SyncStore
}
