package storage

import (
	"context"

	"github.com/horizonfin/banking/pkg/models"
)

// ConnectionReader defines the interface for reading bank connections.
type ConnectionReader interface {
	// GetConnection retrieves a bank connection by its ID.
	GetConnection(ctx context.Context, connectionID string) (*models.BankConnection, error)

	// ListConnectionsByUserID retrieves all bank connections owned by a user.
	ListConnectionsByUserID(ctx context.Context, userID string) ([]models.BankConnection, error)
}

// ConnectionManager defines the interface for creating and mutating bank
// connections, including the per-connection sync mutual exclusion.
type ConnectionManager interface {
	// CreateConnection persists a newly linked bank connection.
	CreateConnection(ctx context.Context, conn *models.BankConnection) (*models.BankConnection, error)

	// UpdateConnectionStatus sets the connection status, e.g. degrading it
	// to LOGIN_REQUIRED when the provider demands reauthentication.
	UpdateConnectionStatus(ctx context.Context, connectionID string, status models.ConnectionStatus) error

	// AcquireSyncLock atomically marks the connection as having a sync in
	// flight. Returns ErrSyncInProgress when another sync holds the lock.
	AcquireSyncLock(ctx context.Context, connectionID string) error

	// ReleaseSyncLock clears the in-flight marker.
	ReleaseSyncLock(ctx context.Context, connectionID string) error
}

// ConnectionStore combines the reader and manager interfaces.
type ConnectionStore interface {
	ConnectionReader
	ConnectionManager
}
