package transfer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/horizonfin/banking/pkg/models"
)

// p2pLimitCents is the per-transfer P2P limit ($2,000.00).
const p2pLimitCents = 2_000_00

// P2PParams describes a peer-to-peer transfer to another user.
type P2PParams struct {
	SenderUserId    string
	RecipientUserId string
	SourceBankId    string
	AmountCents     int64
	Currency        string
	Note            string
}

// CreateP2P creates a peer-to-peer transfer. All validation happens before
// any row is written: over-limit, self-send, and unlinked-recipient
// requests leave no trace in storage. The recipient receives into their
// first rail-linked bank connection.
func (e *Engine) CreateP2P(ctx context.Context, params P2PParams) (*models.Transfer, error) {
	if params.AmountCents <= 0 {
		return nil, ErrAmountInvalid
	}
	if params.AmountCents > p2pLimitCents {
		return nil, ErrAmountOverLimit
	}
	if params.SenderUserId == params.RecipientUserId {
		return nil, ErrSelfTransfer
	}

	source, err := e.ownedRailLinkedConnection(ctx, params.SenderUserId, params.SourceBankId)
	if err != nil {
		return nil, err
	}

	destination, err := e.recipientConnection(ctx, params.RecipientUserId)
	if err != nil {
		return nil, err
	}

	currency := params.Currency
	if currency == "" {
		currency = "USD"
	}

	transfer := &models.Transfer{
		Id:                     uuid.New().String(),
		UserId:                 params.SenderUserId,
		Kind:                   models.KindP2P,
		SourceBankId:           source.Id,
		DestinationBankId:      destination.Id,
		RecipientUserId:        params.RecipientUserId,
		AmountCents:            params.AmountCents,
		Currency:               currency,
		Note:                   params.Note,
		Status:                 models.TransferPending,
		SenderTransactionId:    uuid.New().String(),
		RecipientTransactionId: uuid.New().String(),
	}

	legs := []models.Transaction{
		e.newLeg(transfer, transfer.SenderTransactionId, source, params.AmountCents, models.TypeP2PSent,
			fmt.Sprintf("Payment to %s", params.RecipientUserId)),
		e.newLeg(transfer, transfer.RecipientTransactionId, destination, -params.AmountCents, models.TypeP2PReceived,
			fmt.Sprintf("Payment from %s", params.SenderUserId)),
	}

	return e.execute(ctx, transfer, legs, source.FundingSourceId, destination.FundingSourceId)
}

// recipientConnection picks the recipient's first rail-linked connection.
func (e *Engine) recipientConnection(ctx context.Context, recipientUserID string) (*models.BankConnection, error) {
	conns, err := e.store.ListConnectionsByUserID(ctx, recipientUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipient connections: %w", err)
	}

	for i := range conns {
		if conns[i].RailLinked() {
			return &conns[i], nil
		}
	}
	return nil, ErrRecipientNoBank
}
