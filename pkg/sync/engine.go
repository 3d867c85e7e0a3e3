// Package sync drives cursor-based transaction ingestion from the ledger
// provider into storage. One sync walks delta pages from the connection's
// saved cursor, applies each page durably, and leaves the cursor pointing
// at the first unapplied page.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/horizonfin/banking/pkg/ledger"
	"github.com/horizonfin/banking/pkg/models"
	"github.com/horizonfin/banking/pkg/money"
	"github.com/horizonfin/banking/pkg/notify"
	"github.com/horizonfin/banking/pkg/secrets"
	"github.com/horizonfin/banking/pkg/storage"
)

// maxPagesPerSync bounds a single sync pass. A connection with more
// backlog finishes on the next trigger; the cursor survives between runs.
const maxPagesPerSync = 20

const dateLayout = "2006-01-02"

// Store is the storage surface the engine needs.
type Store interface {
	storage.ConnectionStore
	storage.SyncStore
}

// Syncer runs sync passes. The HTTP layer depends on this rather than the
// concrete engine.
type Syncer interface {
	Sync(ctx context.Context, connectionID string) (*Result, error)
}

// Result summarizes one sync pass.
type Result struct {
	Added    int    `json:"added"`
	Modified int    `json:"modified"`
	Removed  int    `json:"removed"`
	Pages    int    `json:"pages"`
	HasMore  bool   `json:"has_more"`
	Cursor   string `json:"cursor"`
}

// Engine pulls transaction deltas for one connection at a time.
type Engine struct {
	store     Store
	provider  ledger.Provider
	keeper    *secrets.Keeper
	publisher notify.Publisher
	logger    *slog.Logger
}

var _ Syncer = (*Engine)(nil)

// NewEngine creates a sync engine.
func NewEngine(store Store, provider ledger.Provider, keeper *secrets.Keeper, publisher notify.Publisher, logger *slog.Logger) *Engine {
	return &Engine{
		store:     store,
		provider:  provider,
		keeper:    keeper,
		publisher: publisher,
		logger:    logger,
	}
}

// Sync runs one bounded sync pass for a connection. Exactly one pass runs
// per connection at a time; a concurrent trigger gets ErrSyncInProgress.
// The cursor only moves after a page's rows are durably written, so a crash
// mid-pass re-fetches the unfinished page instead of skipping it.
func (e *Engine) Sync(ctx context.Context, connectionID string) (*Result, error) {
	conn, err := e.store.GetConnection(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if conn.Status == models.ConnectionLoginRequired {
		return nil, &ledger.ProviderError{Code: ledger.CodeReauthRequired, Err: errors.New("connection requires re-link")}
	}

	if err := e.store.AcquireSyncLock(ctx, connectionID); err != nil {
		return nil, err
	}
	defer func() {
		if releaseErr := e.store.ReleaseSyncLock(context.WithoutCancel(ctx), connectionID); releaseErr != nil {
			e.logger.Error("failed to release sync lock", "connection_id", connectionID, "error", releaseErr)
		}
	}()

	accessToken, err := e.keeper.Open(conn.AccessCredential)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal access credential: %w", err)
	}

	result := &Result{Cursor: conn.SyncCursor}
	cursor := conn.SyncCursor

	for result.Pages < maxPagesPerSync {
		page, err := e.provider.GetTransactionDeltas(ctx, accessToken, cursor)
		if err != nil {
			if ledger.ReauthRequired(err) {
				if updateErr := e.store.UpdateConnectionStatus(ctx, connectionID, models.ConnectionLoginRequired); updateErr != nil {
					e.logger.Error("failed to degrade connection status", "connection_id", connectionID, "error", updateErr)
				}
			}
			return result, fmt.Errorf("failed to fetch deltas: %w", err)
		}

		syncPage, err := e.buildSyncPage(conn.Id, page)
		if err != nil {
			return result, err
		}

		if err := e.store.ApplySyncPage(ctx, conn.Id, syncPage); err != nil {
			return result, fmt.Errorf("failed to apply sync page: %w", err)
		}

		result.Added += len(page.Added)
		result.Modified += len(page.Modified)
		result.Removed += len(page.RemovedIds)
		result.Pages++
		result.Cursor = page.NextCursor
		result.HasMore = page.HasMore
		cursor = page.NextCursor

		if !page.HasMore {
			break
		}
	}

	e.logger.Info("sync pass complete",
		"connection_id", connectionID,
		"added", result.Added,
		"modified", result.Modified,
		"removed", result.Removed,
		"pages", result.Pages,
		"has_more", result.HasMore,
	)
	e.publishSyncComplete(ctx, connectionID, result)

	return result, nil
}

// publishSyncComplete announces a finished pass to connected clients. A
// publish failure never fails the sync; the rows are already durable.
func (e *Engine) publishSyncComplete(ctx context.Context, connectionID string, result *Result) {
	err := e.publisher.Publish(ctx, notify.Message{
		Type: notify.MessageTypeSyncComplete,
		Payload: notify.SyncCompletePayload{
			BankConnectionId: connectionID,
			Added:            result.Added,
			Modified:         result.Modified,
			Removed:          result.Removed,
		},
	})
	if err != nil {
		e.logger.Error("failed to publish sync completion", "connection_id", connectionID, "error", err)
	}
}

// buildSyncPage converts a provider delta page into storage writes. Added
// and modified entries are the same operation: an upsert keyed by the
// provider transaction id.
func (e *Engine) buildSyncPage(connectionID string, page *ledger.DeltaPage) (storage.SyncPage, error) {
	upserts := make([]models.Transaction, 0, len(page.Added)+len(page.Modified))
	for _, delta := range page.Added {
		tx, err := mapDelta(connectionID, delta)
		if err != nil {
			return storage.SyncPage{}, err
		}
		upserts = append(upserts, tx)
	}
	for _, delta := range page.Modified {
		tx, err := mapDelta(connectionID, delta)
		if err != nil {
			return storage.SyncPage{}, err
		}
		upserts = append(upserts, tx)
	}

	return storage.SyncPage{
		Upserts:    upserts,
		RemovedIds: page.RemovedIds,
		NextCursor: page.NextCursor,
	}, nil
}

// mapDelta converts one provider delta into a ledger row. The provider's
// sign convention is kept as-is: positive amounts are money leaving the
// account, negative amounts are money entering it.
func mapDelta(connectionID string, delta ledger.DeltaTransaction) (models.Transaction, error) {
	cents, err := money.ParseCents(delta.Amount)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("transaction %s: %w", delta.Id, err)
	}

	date, err := time.Parse(dateLayout, delta.Date)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("transaction %s: invalid date %q: %w", delta.Id, delta.Date, err)
	}

	txType := models.TypeCredit
	if cents > 0 {
		txType = models.TypeDebit
	}
	status := models.TransactionSuccess
	if delta.Pending {
		status = models.TransactionPending
	}

	return models.Transaction{
		Id:               delta.Id,
		BankConnectionId: connectionID,
		AccountId:        delta.AccountId,
		AmountCents:      cents,
		Currency:         delta.Currency,
		Name:             delta.Name,
		MerchantName:     delta.MerchantName,
		Date:             date,
		Status:           status,
		Category:         delta.Category,
		Channel:          delta.Channel,
		Pending:          delta.Pending,
		Type:             txType,
		ExternalId:       delta.Id,
	}, nil
}
