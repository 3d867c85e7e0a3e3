// Package ledger defines the contract with the external ledger provider:
// incremental transaction deltas behind an opaque cursor, and current
// account balances. The provider is an opaque remote service; this package
// only models its interface.
package ledger

import (
	"context"
	"errors"
	"fmt"
)

// ErrorCode classifies provider failures.
type ErrorCode string

const (
	// CodeReauthRequired means the stored access credential is no longer
	// valid and the user must re-link the institution.
	CodeReauthRequired ErrorCode = "REAUTH_REQUIRED"
	// CodeRateLimited means the provider throttled the call; retryable.
	CodeRateLimited ErrorCode = "RATE_LIMITED"
	// CodeInstitutionDown means the upstream institution is unavailable;
	// retryable.
	CodeInstitutionDown ErrorCode = "INSTITUTION_DOWN"
	// CodeUnknown covers everything else.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// ProviderError is a typed failure from the ledger provider. The sync
// engine inspects the code to decide between flipping the connection to
// LOGIN_REQUIRED and leaving the cursor untouched for a retry.
type ProviderError struct {
	Code ErrorCode
	Err  error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("ledger provider error (%s): %v", e.Code, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Retryable reports whether re-invoking the same call with the same cursor
// is expected to eventually succeed.
func (e *ProviderError) Retryable() bool {
	return e.Code == CodeRateLimited || e.Code == CodeInstitutionDown
}

// ReauthRequired reports whether err is a provider error demanding a
// re-link of the institution.
func ReauthRequired(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Code == CodeReauthRequired
}

// DeltaTransaction is one entry in a sync delta page. Amount is the
// provider's decimal string with its sign intact: positive for money
// leaving the account, negative for money entering it.
type DeltaTransaction struct {
	Id           string `json:"transaction_id"`
	AccountId    string `json:"account_id"`
	Amount       string `json:"amount"`
	Currency     string `json:"iso_currency_code"`
	Name         string `json:"name"`
	MerchantName string `json:"merchant_name,omitempty"`
	Date         string `json:"date"`
	Pending      bool   `json:"pending"`
	Category     string `json:"personal_finance_category,omitempty"`
	Channel      string `json:"payment_channel,omitempty"`
}

// DeltaPage is one page of transaction deltas for a connection.
type DeltaPage struct {
	Added      []DeltaTransaction `json:"added"`
	Modified   []DeltaTransaction `json:"modified"`
	RemovedIds []string           `json:"removed"`
	NextCursor string             `json:"next_cursor"`
	HasMore    bool               `json:"has_more"`
}

// Balances carries provider-reported balances in cents.
type Balances struct {
	AvailableCents int64
	CurrentCents   int64
	LimitCents     int64
	Currency       string
}

// Account is one account within a bank connection as the provider sees it.
type Account struct {
	Id       string
	Name     string
	Mask     string
	Type     string
	Subtype  string
	Balances Balances
}

// Provider is the ledger provider contract consumed by the sync engine and
// the effective balance calculator.
type Provider interface {
	// GetTransactionDeltas fetches one page of deltas after cursor. An
	// empty cursor means start-of-history.
	GetTransactionDeltas(ctx context.Context, accessToken, cursor string) (*DeltaPage, error)

	// GetAccounts fetches the account list with current balances.
	GetAccounts(ctx context.Context, accessToken string) ([]Account, error)
}
