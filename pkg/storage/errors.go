package storage

import "errors"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrSyncInProgress is returned when a sync is requested for a connection
// that already has one in flight.
var ErrSyncInProgress = errors.New("sync already in progress for this connection")

// ErrInvalidTransition is returned when a conditional status update finds
// the transfer outside the target status's valid predecessors.
var ErrInvalidTransition = errors.New("transfer status transition not forward-valid")

// ErrTransferNotCancellable is returned when a transfer cannot be
// cancelled, e.g., because the rail already started processing it.
var ErrTransferNotCancellable = errors.New("transfer not in a cancellable state")

// ErrConnectionExists is returned when creating a bank connection that
// already exists.
var ErrConnectionExists = errors.New("bank connection already exists")

// ErrTransferExists is returned when creating a transfer whose id (or one
// of its leg ids) is already taken.
var ErrTransferExists = errors.New("transfer already exists")
