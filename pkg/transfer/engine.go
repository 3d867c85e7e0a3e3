// Package transfer implements the transfer state machine: initiation
// against the payment rail, webhook-driven reconciliation, cancellation,
// and the sweep that rescues transfers whose webhook never arrived.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/horizonfin/banking/pkg/models"
	"github.com/horizonfin/banking/pkg/money"
	"github.com/horizonfin/banking/pkg/notify"
	"github.com/horizonfin/banking/pkg/rail"
	"github.com/horizonfin/banking/pkg/storage"
)

var (
	// ErrAmountInvalid is returned for zero or negative transfer amounts.
	ErrAmountInvalid = errors.New("transfer amount must be positive")

	// ErrAmountOverLimit is returned when a P2P transfer exceeds the
	// per-transfer limit.
	ErrAmountOverLimit = errors.New("transfer amount exceeds the per-transfer limit")

	// ErrBankNotLinked is returned when a bank connection has no funding
	// source registered with the payment rail.
	ErrBankNotLinked = errors.New("bank connection is not linked to the payment rail")

	// ErrRecipientNoBank is returned when the P2P recipient has no
	// rail-linked bank connection.
	ErrRecipientNoBank = errors.New("recipient has no linked bank connection")

	// ErrSelfTransfer is returned when a P2P transfer names the sender as
	// its own recipient.
	ErrSelfTransfer = errors.New("cannot send a P2P transfer to yourself")

	// ErrSameBank is returned when an internal transfer names the same
	// connection as source and destination.
	ErrSameBank = errors.New("source and destination banks must differ")
)

// Store is the storage surface the engine needs.
type Store interface {
	storage.ConnectionReader
	storage.TransferStore
}

// Engine drives transfers through their state machine. Every status write
// goes through a conditional transition, so webhook replays, racing
// cancels, and the reconciliation sweep can never regress a transfer.
type Engine struct {
	store     Store
	rail      rail.Rail
	publisher notify.Publisher
	logger    *slog.Logger
}

// Service is the transfer surface the HTTP layer depends on.
type Service interface {
	Initiate(ctx context.Context, params InitiateParams) (*models.Transfer, error)
	CreateP2P(ctx context.Context, params P2PParams) (*models.Transfer, error)
	Cancel(ctx context.Context, userID, transferID string) (*models.Transfer, error)
	HandleWebhook(ctx context.Context, event rail.WebhookEvent) error
}

var _ Service = (*Engine)(nil)

// NewEngine creates a transfer engine.
func NewEngine(store Store, r rail.Rail, publisher notify.Publisher, logger *slog.Logger) *Engine {
	return &Engine{
		store:     store,
		rail:      r,
		publisher: publisher,
		logger:    logger,
	}
}

// InitiateParams describes an internal transfer between two of the user's
// own linked banks.
type InitiateParams struct {
	UserId            string
	SourceBankId      string
	DestinationBankId string
	AmountCents       int64
	Currency          string
	Note              string
}

// Initiate creates an internal transfer. The PENDING transfer and both
// ledger legs are written atomically before the rail is called; the rail
// outcome then moves the transfer to PROCESSING or FAILED.
func (e *Engine) Initiate(ctx context.Context, params InitiateParams) (*models.Transfer, error) {
	if params.AmountCents <= 0 {
		return nil, ErrAmountInvalid
	}
	if params.SourceBankId == params.DestinationBankId {
		return nil, ErrSameBank
	}

	source, err := e.ownedRailLinkedConnection(ctx, params.UserId, params.SourceBankId)
	if err != nil {
		return nil, err
	}
	destination, err := e.ownedRailLinkedConnection(ctx, params.UserId, params.DestinationBankId)
	if err != nil {
		return nil, err
	}

	currency := params.Currency
	if currency == "" {
		currency = "USD"
	}

	transfer := &models.Transfer{
		Id:                     uuid.New().String(),
		UserId:                 params.UserId,
		Kind:                   models.KindInternal,
		SourceBankId:           source.Id,
		DestinationBankId:      destination.Id,
		AmountCents:            params.AmountCents,
		Currency:               currency,
		Note:                   params.Note,
		Status:                 models.TransferPending,
		SenderTransactionId:    uuid.New().String(),
		RecipientTransactionId: uuid.New().String(),
	}

	legs := []models.Transaction{
		e.newLeg(transfer, transfer.SenderTransactionId, source, params.AmountCents, models.TypeInternal,
			fmt.Sprintf("Transfer to %s", destination.InstitutionName)),
		e.newLeg(transfer, transfer.RecipientTransactionId, destination, -params.AmountCents, models.TypeInternal,
			fmt.Sprintf("Transfer from %s", source.InstitutionName)),
	}

	return e.execute(ctx, transfer, legs, source.FundingSourceId, destination.FundingSourceId)
}

// Cancel cancels a transfer the rail has not started processing. Anything
// past PENDING conflicts.
func (e *Engine) Cancel(ctx context.Context, userID, transferID string) (*models.Transfer, error) {
	transfer, err := e.store.GetTransfer(ctx, transferID)
	if err != nil {
		return nil, err
	}
	if transfer.UserId != userID {
		return nil, storage.ErrNotFound
	}
	if transfer.Status != models.TransferPending {
		return nil, storage.ErrTransferNotCancellable
	}

	if transfer.RailTransferId != "" {
		if err := e.rail.CancelTransfer(ctx, transfer.RailTransferId); err != nil {
			return nil, &rail.Error{Op: "cancel", Err: err}
		}
	}

	cancelled, err := e.store.TransitionTransfer(ctx, transferID, models.TransferCancelled, "")
	if err != nil {
		if errors.Is(err, storage.ErrInvalidTransition) {
			// Lost the race against a webhook that moved it forward.
			return nil, storage.ErrTransferNotCancellable
		}
		return nil, err
	}

	e.publishUpdate(ctx, cancelled)
	return cancelled, nil
}

// webhookTargets maps rail webhook topics onto transfer statuses.
var webhookTargets = map[rail.Topic]models.TransferStatus{
	rail.TopicTransferCreated:   models.TransferProcessing,
	rail.TopicTransferCompleted: models.TransferSuccess,
	rail.TopicTransferFailed:    models.TransferFailed,
	rail.TopicTransferCancelled: models.TransferCancelled,
	rail.TopicTransferReturned:  models.TransferReturned,
}

// HandleWebhook applies one rail webhook event. Replays, out-of-order
// deliveries, and events for already-terminal transfers are benign no-ops.
// Events for transfers this system never created are logged and dropped.
func (e *Engine) HandleWebhook(ctx context.Context, event rail.WebhookEvent) error {
	target, ok := webhookTargets[event.Topic]
	if !ok {
		e.logger.Info("ignoring unknown webhook topic", "topic", event.Topic, "event_id", event.Id)
		return nil
	}

	railTransferID := event.TransferId()
	transfer, err := e.store.GetTransferByRailId(ctx, railTransferID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			e.logger.Warn("webhook for unknown transfer", "rail_transfer_id", railTransferID, "topic", event.Topic)
			return nil
		}
		return fmt.Errorf("failed to look up transfer for webhook: %w", err)
	}

	updated, err := e.store.TransitionTransfer(ctx, transfer.Id, target, "")
	if err != nil {
		if errors.Is(err, storage.ErrInvalidTransition) {
			e.logger.Info("webhook transition is a no-op",
				"transfer_id", transfer.Id, "current", transfer.Status, "target", target, "topic", event.Topic)
			return nil
		}
		return fmt.Errorf("failed to transition transfer %s: %w", transfer.Id, err)
	}

	e.logger.Info("transfer reconciled from webhook",
		"transfer_id", updated.Id, "status", updated.Status, "topic", event.Topic)
	e.publishUpdate(ctx, updated)
	return nil
}

// railStatusTargets maps the rail's polled statuses onto transfer statuses.
// A rail-side "pending" carries no new information.
var railStatusTargets = map[rail.TransferStatus]models.TransferStatus{
	rail.StatusProcessed: models.TransferSuccess,
	rail.StatusFailed:    models.TransferFailed,
	rail.StatusCancelled: models.TransferCancelled,
	rail.StatusReturned:  models.TransferReturned,
}

// ApplyRailStatus reconciles a transfer against a status read directly from
// the rail. Used by the sweep for transfers whose webhook never arrived.
func (e *Engine) ApplyRailStatus(ctx context.Context, transfer *models.Transfer, status rail.TransferStatus) (bool, error) {
	target, ok := railStatusTargets[status]
	if !ok {
		return false, nil
	}
	if !transfer.Status.CanTransition(target) {
		return false, nil
	}

	updated, err := e.store.TransitionTransfer(ctx, transfer.Id, target, "")
	if err != nil {
		if errors.Is(err, storage.ErrInvalidTransition) {
			return false, nil
		}
		return false, err
	}

	e.publishUpdate(ctx, updated)
	return true, nil
}

// Reconcile sweeps transfers stuck in PROCESSING longer than maxAge and
// re-verifies each against the rail. One broken transfer never stops the
// sweep.
func (e *Engine) Reconcile(ctx context.Context, maxAge time.Duration) (int, error) {
	stuck, err := e.store.GetStuckTransfers(ctx, maxAge)
	if err != nil {
		return 0, fmt.Errorf("failed to list stuck transfers: %w", err)
	}

	reconciled := 0
	for i := range stuck {
		transfer := &stuck[i]
		status, err := e.rail.GetTransferStatus(ctx, transfer.RailTransferId)
		if err != nil {
			e.logger.Error("failed to read rail status", "transfer_id", transfer.Id, "error", err)
			continue
		}

		updated, err := e.ApplyRailStatus(ctx, transfer, status)
		if err != nil {
			e.logger.Error("failed to reconcile stuck transfer", "transfer_id", transfer.Id, "error", err)
			continue
		}
		if updated {
			reconciled++
		}
	}

	e.logger.Info("reconciliation sweep complete", "stuck", len(stuck), "reconciled", reconciled)
	return reconciled, nil
}

// execute persists the transfer atomically with its legs, then drives it
// through the rail. A rail failure fails the transfer and its legs
// atomically, and the rail error is surfaced to the caller.
func (e *Engine) execute(ctx context.Context, transfer *models.Transfer, legs []models.Transaction, sourceFundingID, destFundingID string) (*models.Transfer, error) {
	created, err := e.store.CreateTransfer(ctx, transfer, legs)
	if err != nil {
		return nil, fmt.Errorf("failed to persist transfer: %w", err)
	}

	railID, err := e.rail.CreateTransfer(ctx, rail.CreateTransferParams{
		SourceFundingId:      sourceFundingID,
		DestinationFundingId: destFundingID,
		Amount:               money.Format(transfer.AmountCents),
		Currency:             transfer.Currency,
	})
	if err != nil {
		if _, failErr := e.store.TransitionTransfer(ctx, created.Id, models.TransferFailed, ""); failErr != nil {
			e.logger.Error("failed to mark transfer FAILED after rail error",
				"transfer_id", created.Id, "error", failErr)
		}
		return nil, &rail.Error{Op: "create", Err: err}
	}

	processing, err := e.store.TransitionTransfer(ctx, created.Id, models.TransferProcessing, railID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark transfer PROCESSING: %w", err)
	}

	e.publishUpdate(ctx, processing)
	return processing, nil
}

// newLeg builds one ledger leg for a transfer. Positive cents mean money
// leaving that connection's account.
func (e *Engine) newLeg(transfer *models.Transfer, legID string, conn *models.BankConnection, cents int64, txType models.TransactionType, name string) models.Transaction {
	return models.Transaction{
		Id:               legID,
		BankConnectionId: conn.Id,
		AccountId:        conn.FundingAccountId,
		AmountCents:      cents,
		Currency:         transfer.Currency,
		Name:             name,
		Date:             time.Now().UTC().Truncate(24 * time.Hour),
		Status:           models.TransactionPending,
		Pending:          true,
		Type:             txType,
		TransferId:       transfer.Id,
	}
}

// ownedRailLinkedConnection loads a connection and verifies ownership and
// rail linkage. Ownership failures read as not-found so one user cannot
// probe another's connection ids.
func (e *Engine) ownedRailLinkedConnection(ctx context.Context, userID, connectionID string) (*models.BankConnection, error) {
	conn, err := e.store.GetConnection(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if conn.UserId != userID {
		return nil, storage.ErrNotFound
	}
	if !conn.RailLinked() {
		return nil, ErrBankNotLinked
	}
	return conn, nil
}

func (e *Engine) publishUpdate(ctx context.Context, transfer *models.Transfer) {
	err := e.publisher.Publish(ctx, notify.Message{
		Type: notify.MessageTypeTransferUpdate,
		Payload: notify.TransferUpdatePayload{
			TransferId:      transfer.Id,
			UserId:          transfer.UserId,
			RecipientUserId: transfer.RecipientUserId,
			Kind:            transfer.Kind,
			Status:          transfer.Status,
			AmountCents:     transfer.AmountCents,
			Currency:        transfer.Currency,
		},
	})
	if err != nil {
		e.logger.Error("failed to publish transfer update", "transfer_id", transfer.Id, "error", err)
	}
}
