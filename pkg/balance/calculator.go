// Package balance computes effective account balances: the provider's
// reported balances overlaid with in-flight internal transfer legs the
// bank cannot see yet.
package balance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/horizonfin/banking/pkg/ledger"
	"github.com/horizonfin/banking/pkg/secrets"
	"github.com/horizonfin/banking/pkg/storage"
)

// AccountBalance is one account with its provider balances and the
// effective available balance after pending internal activity.
type AccountBalance struct {
	AccountId               string `json:"account_id"`
	Name                    string `json:"name"`
	Mask                    string `json:"mask,omitempty"`
	Type                    string `json:"type,omitempty"`
	Subtype                 string `json:"subtype,omitempty"`
	Currency                string `json:"currency,omitempty"`
	CurrentCents            int64  `json:"current_cents"`
	AvailableCents          int64  `json:"available_cents"`
	PendingAdjustmentCents  int64  `json:"pending_adjustment_cents"`
	EffectiveAvailableCents int64  `json:"effective_available_cents"`
}

// Overview is the full balance picture for one bank connection. Pending
// legs that reference an account the provider no longer reports are
// surfaced in UnmatchedPendingCents and Notes rather than silently dropped.
type Overview struct {
	BankConnectionId      string           `json:"bank_connection_id"`
	Accounts              []AccountBalance `json:"accounts"`
	UnmatchedPendingCents int64            `json:"unmatched_pending_cents,omitempty"`
	Notes                 []string         `json:"notes,omitempty"`
}

// Reader serves balance overviews. The HTTP layer depends on this rather
// than the concrete calculator.
type Reader interface {
	EffectiveBalances(ctx context.Context, connectionID string) (*Overview, error)
}

// Calculator joins provider balances with locally known pending activity.
type Calculator struct {
	store    storage.TransactionReader
	conns    storage.ConnectionReader
	provider ledger.Provider
	keeper   *secrets.Keeper
	logger   *slog.Logger
}

var _ Reader = (*Calculator)(nil)

// NewCalculator creates a balance calculator.
func NewCalculator(store storage.TransactionReader, conns storage.ConnectionReader, provider ledger.Provider, keeper *secrets.Keeper, logger *slog.Logger) *Calculator {
	return &Calculator{
		store:    store,
		conns:    conns,
		provider: provider,
		keeper:   keeper,
		logger:   logger,
	}
}

// EffectiveBalances fetches the provider's balances for a connection and
// subtracts pending internal outflows (and adds pending inflows) that are
// not yet visible in the provider's feed. Each leg keeps the storage sign
// convention: positive means money leaving the account.
func (c *Calculator) EffectiveBalances(ctx context.Context, connectionID string) (*Overview, error) {
	conn, err := c.conns.GetConnection(ctx, connectionID)
	if err != nil {
		return nil, err
	}

	accessToken, err := c.keeper.Open(conn.AccessCredential)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal access credential: %w", err)
	}

	accounts, err := c.provider.GetAccounts(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider accounts: %w", err)
	}

	legs, err := c.store.ListPendingTransferLegs(ctx, connectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending transfer legs: %w", err)
	}

	adjustments := make(map[string]int64, len(accounts))
	overview := &Overview{BankConnectionId: connectionID}

	for _, leg := range legs {
		adjustments[leg.AccountId] -= leg.AmountCents
	}

	for _, account := range accounts {
		adjustment := adjustments[account.Id]
		delete(adjustments, account.Id)

		overview.Accounts = append(overview.Accounts, AccountBalance{
			AccountId:               account.Id,
			Name:                    account.Name,
			Mask:                    account.Mask,
			Type:                    account.Type,
			Subtype:                 account.Subtype,
			Currency:                account.Balances.Currency,
			CurrentCents:            account.Balances.CurrentCents,
			AvailableCents:          account.Balances.AvailableCents,
			PendingAdjustmentCents:  adjustment,
			EffectiveAvailableCents: account.Balances.AvailableCents + adjustment,
		})
	}

	// Whatever is left points at accounts the provider did not report.
	for accountID, adjustment := range adjustments {
		overview.UnmatchedPendingCents += adjustment
		overview.Notes = append(overview.Notes,
			fmt.Sprintf("pending activity of %d cents on unknown account %s", adjustment, accountID))
		c.logger.Warn("pending transfer leg references unknown account",
			"connection_id", connectionID,
			"account_id", accountID,
			"adjustment_cents", adjustment,
		)
	}

	return overview, nil
}
