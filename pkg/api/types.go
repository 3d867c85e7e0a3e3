// Package api holds the wire types of the HTTP surface. Amounts cross the
// wire as decimal strings with two places; storage keeps cents.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ErrorCode is a stable, machine-readable error identifier. Clients branch
// on codes, never on message text.
type ErrorCode string

const (
	CodeValidationError        ErrorCode = "VALIDATION_ERROR"
	CodeNotFound               ErrorCode = "NOT_FOUND"
	CodeRecipientNoBank        ErrorCode = "RECIPIENT_NO_BANK"
	CodeBankNotLinked          ErrorCode = "BANK_NOT_LINKED"
	CodeAmountOverLimit        ErrorCode = "AMOUNT_OVER_LIMIT"
	CodeTransferNotCancellable ErrorCode = "TRANSFER_NOT_CANCELLABLE"
	CodeSyncInProgress         ErrorCode = "SYNC_IN_PROGRESS"
	CodeReauthRequired         ErrorCode = "REAUTH_REQUIRED"
	CodeProviderError          ErrorCode = "PROVIDER_ERROR"
	CodePaymentProviderError   ErrorCode = "PAYMENT_PROVIDER_ERROR"
	CodeInternalError          ErrorCode = "INTERNAL_ERROR"
)

// Error is the uniform error body.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse is the envelope every error responds with.
type ErrorResponse struct {
	Error Error `json:"error"`
}

// BankConnection is a linked bank as served to clients. The sealed access
// credential and the sync cursor never leave the service.
type BankConnection struct {
	Id              string     `json:"id"`
	UserId          string     `json:"user_id"`
	InstitutionId   string     `json:"institution_id"`
	InstitutionName string     `json:"institution_name"`
	Status          string     `json:"status"`
	TransfersLinked bool       `json:"transfers_linked"`
	LastSyncedAt    *time.Time `json:"last_synced_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// NewBankConnection is the request body for linking a bank. AccessToken is
// the provider credential obtained during the link flow; it is sealed
// before it touches storage.
type NewBankConnection struct {
	InstitutionId    string  `json:"institution_id"`
	InstitutionName  string  `json:"institution_name"`
	AccessToken      string  `json:"access_token"`
	FundingSourceId  *string `json:"funding_source_id,omitempty"`
	FundingAccountId *string `json:"funding_account_id,omitempty"`
}

// Transaction is one ledger entry as served to clients.
type Transaction struct {
	Id               string             `json:"id"`
	BankConnectionId string             `json:"bank_connection_id"`
	AccountId        string             `json:"account_id,omitempty"`
	Amount           string             `json:"amount"`
	Currency         string             `json:"currency,omitempty"`
	Name             string             `json:"name"`
	MerchantName     *string            `json:"merchant_name,omitempty"`
	Date             openapi_types.Date `json:"date"`
	Status           string             `json:"status"`
	Category         *string            `json:"category,omitempty"`
	Channel          *string            `json:"channel,omitempty"`
	Pending          bool               `json:"pending"`
	Type             string             `json:"type"`
	TransferId       *string            `json:"transfer_id,omitempty"`
}

// Transfer is a user-initiated money movement as served to clients.
type Transfer struct {
	Id                string    `json:"id"`
	UserId            string    `json:"user_id"`
	Kind              string    `json:"kind"`
	SourceBankId      string    `json:"source_bank_id"`
	DestinationBankId string    `json:"destination_bank_id"`
	RecipientUserId   *string   `json:"recipient_user_id,omitempty"`
	Amount            string    `json:"amount"`
	Currency          string    `json:"currency"`
	Note              *string   `json:"note,omitempty"`
	Status            string    `json:"status"`
	RailTransferId    *string   `json:"rail_transfer_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NewTransfer is the request body for an internal transfer between two of
// the caller's own banks.
type NewTransfer struct {
	SourceBankId      string  `json:"source_bank_id"`
	DestinationBankId string  `json:"destination_bank_id"`
	Amount            string  `json:"amount"`
	Currency          *string `json:"currency,omitempty"`
	Note              *string `json:"note,omitempty"`
}

// NewP2PTransfer is the request body for a peer-to-peer transfer.
type NewP2PTransfer struct {
	RecipientUserId string  `json:"recipient_user_id"`
	SourceBankId    string  `json:"source_bank_id"`
	Amount          string  `json:"amount"`
	Currency        *string `json:"currency,omitempty"`
	Note            *string `json:"note,omitempty"`
}

// SyncResult reports what one sync pass ingested.
type SyncResult struct {
	Added    int    `json:"added"`
	Modified int    `json:"modified"`
	Removed  int    `json:"removed"`
	Pages    int    `json:"pages"`
	HasMore  bool   `json:"has_more"`
	Cursor   string `json:"cursor,omitempty"`
}

// AccountBalance is one account with provider and effective balances.
type AccountBalance struct {
	AccountId          string `json:"account_id"`
	Name               string `json:"name"`
	Mask               string `json:"mask,omitempty"`
	Type               string `json:"type,omitempty"`
	Subtype            string `json:"subtype,omitempty"`
	Currency           string `json:"currency,omitempty"`
	Current            string `json:"current"`
	Available          string `json:"available"`
	PendingAdjustment  string `json:"pending_adjustment"`
	EffectiveAvailable string `json:"effective_available"`
}

// BalanceOverview is the full balance picture for one bank connection.
type BalanceOverview struct {
	BankConnectionId string           `json:"bank_connection_id"`
	Accounts         []AccountBalance `json:"accounts"`
	UnmatchedPending *string          `json:"unmatched_pending,omitempty"`
	Notes            []string         `json:"notes,omitempty"`
}
