package storage

// ApiStore defines the complete set of operations needed by the HTTP API.
// Components should depend on the more granular interfaces (ConnectionStore,
// TransferStore, etc.) instead of this one.
type ApiStore interface {
	ConnectionStore
	TransactionReader
	TransferStore
	WebSocketManager
}

// Storage defines the root interface for the entire data layer, including
// the privileged sync-page application used by the sync engine.
type Storage interface {
	ApiStore
	SyncStore
}
