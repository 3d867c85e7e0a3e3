package models

import (
	"time"
)

// ConnectionStatus defines the possible states of a linked bank connection.
type ConnectionStatus string

const (
	ConnectionActive        ConnectionStatus = "ACTIVE"
	ConnectionLoginRequired ConnectionStatus = "LOGIN_REQUIRED"
	ConnectionInactive      ConnectionStatus = "INACTIVE"
)

// BankConnection represents one linked external account-provider item.
// The access credential is stored encrypted and only decrypted immediately
// before a provider call.
type BankConnection struct {
	Id               string           `dynamodbav:"id"`
	UserId           string           `dynamodbav:"user_id"`
	AccessCredential []byte           `dynamodbav:"access_credential"`
	InstitutionId    string           `dynamodbav:"institution_id"`
	InstitutionName  string           `dynamodbav:"institution_name"`
	Status           ConnectionStatus `dynamodbav:"status"`
	SyncCursor       string           `dynamodbav:"sync_cursor,omitempty"`
	SyncInFlight     bool             `dynamodbav:"sync_in_flight"`
	LastSyncedAt     time.Time        `dynamodbav:"last_synced_at,omitempty"`
	FundingSourceId  string           `dynamodbav:"funding_source_id,omitempty"`
	FundingAccountId string           `dynamodbav:"funding_account_id,omitempty"`
	CreatedAt        time.Time        `dynamodbav:"created_at"`
	UpdatedAt        time.Time        `dynamodbav:"updated_at"`
}

// RailLinked reports whether the connection is eligible for transfers.
func (c *BankConnection) RailLinked() bool {
	return c.FundingSourceId != ""
}

// TransactionStatus defines the possible states of a ledger transaction.
type TransactionStatus string

const (
	TransactionPending    TransactionStatus = "PENDING"
	TransactionProcessing TransactionStatus = "PROCESSING"
	TransactionSuccess    TransactionStatus = "SUCCESS"
	TransactionFailed     TransactionStatus = "FAILED"
	TransactionDeclined   TransactionStatus = "DECLINED"
	TransactionReturned   TransactionStatus = "RETURNED"
	TransactionCancelled  TransactionStatus = "CANCELLED"
)

// TransactionType distinguishes provider-sourced entries from locally
// synthesized transfer legs.
type TransactionType string

const (
	TypeDebit       TransactionType = "DEBIT"
	TypeCredit      TransactionType = "CREDIT"
	TypeInternal    TransactionType = "INTERNAL"
	TypeP2PSent     TransactionType = "P2P_SENT"
	TypeP2PReceived TransactionType = "P2P_RECEIVED"
)

// Transaction is one ledger entry, either pulled from the provider or
// synthesized locally as a transfer leg. Provider-sourced rows use the
// provider transaction id as their Id, which makes re-ingestion an
// in-place update rather than a duplicate.
type Transaction struct {
	Id               string `dynamodbav:"id"`
	BankConnectionId string `dynamodbav:"bank_connection_id"`
	AccountId        string `dynamodbav:"account_id"`
	// AmountCents keeps the provider's sign convention: money leaving the
	// account is positive, money entering is negative.
	AmountCents    int64             `dynamodbav:"amount_cents"`
	Currency       string            `dynamodbav:"currency"`
	Name           string            `dynamodbav:"name"`
	MerchantName   string            `dynamodbav:"merchant_name,omitempty"`
	Date           time.Time         `dynamodbav:"date"`
	Status         TransactionStatus `dynamodbav:"status"`
	Category       string            `dynamodbav:"category,omitempty"`
	Channel        string            `dynamodbav:"channel,omitempty"`
	Pending        bool              `dynamodbav:"pending"`
	Type           TransactionType   `dynamodbav:"type"`
	ExternalId     string            `dynamodbav:"external_id,omitempty"`
	TransferId     string            `dynamodbav:"transfer_id,omitempty"`
	RailTransferId string            `dynamodbav:"rail_transfer_id,omitempty"`
	CreatedAt      time.Time         `dynamodbav:"created_at"`
	UpdatedAt      time.Time         `dynamodbav:"updated_at"`
}

// TransferStatus defines the possible states of a user-initiated transfer.
type TransferStatus string

const (
	TransferPending    TransferStatus = "PENDING"
	TransferProcessing TransferStatus = "PROCESSING"
	TransferSuccess    TransferStatus = "SUCCESS"
	TransferFailed     TransferStatus = "FAILED"
	TransferCancelled  TransferStatus = "CANCELLED"
	TransferReturned   TransferStatus = "RETURNED"
)

// TransferKind distinguishes internal between-own-banks transfers from
// peer-to-peer transfers.
type TransferKind string

const (
	KindInternal TransferKind = "INTERNAL"
	KindP2P      TransferKind = "P2P"
)

// Transfer is a user-initiated money movement reconciled against the
// payment rail's asynchronous webhook notifications.
type Transfer struct {
	Id                     string         `dynamodbav:"id"`
	UserId                 string         `dynamodbav:"user_id"`
	Kind                   TransferKind   `dynamodbav:"kind"`
	SourceBankId           string         `dynamodbav:"source_bank_id"`
	DestinationBankId      string         `dynamodbav:"destination_bank_id"`
	RecipientUserId        string         `dynamodbav:"recipient_user_id,omitempty"`
	AmountCents            int64          `dynamodbav:"amount_cents"`
	Currency               string         `dynamodbav:"currency"`
	Note                   string         `dynamodbav:"note,omitempty"`
	Status                 TransferStatus `dynamodbav:"status"`
	RailTransferId         string         `dynamodbav:"rail_transfer_id,omitempty"`
	SenderTransactionId    string         `dynamodbav:"sender_transaction_id,omitempty"`
	RecipientTransactionId string         `dynamodbav:"recipient_transaction_id,omitempty"`
	CreatedAt              time.Time      `dynamodbav:"created_at"`
	UpdatedAt              time.Time      `dynamodbav:"updated_at"`
}

// transferPredecessors describes the forward-only transfer state machine.
// A transition is applied only when the current status is one of the target
// status's valid predecessors; everything else is a no-op or a conflict.
var transferPredecessors = map[TransferStatus][]TransferStatus{
	TransferProcessing: {TransferPending},
	TransferSuccess:    {TransferProcessing},
	TransferFailed:     {TransferPending, TransferProcessing},
	TransferCancelled:  {TransferPending},
	// The rail can claw back a transfer it already completed.
	TransferReturned: {TransferProcessing, TransferSuccess},
}

// ValidPredecessors returns the statuses from which a transfer may legally
// move into target. The returned slice is shared; callers must not mutate it.
func ValidPredecessors(target TransferStatus) []TransferStatus {
	return transferPredecessors[target]
}

// IsTerminal reports whether no webhook or user action can move the
// transfer anywhere else. SUCCESS is not fully terminal: the rail can still
// claw it back with a return.
func (s TransferStatus) IsTerminal() bool {
	switch s {
	case TransferFailed, TransferCancelled, TransferReturned:
		return true
	}
	return false
}

// CanTransition reports whether moving from s to target is forward-valid.
func (s TransferStatus) CanTransition(target TransferStatus) bool {
	for _, p := range transferPredecessors[target] {
		if p == s {
			return true
		}
	}
	return false
}

// LegStatus maps a transfer status onto the matching transaction-leg status.
func (s TransferStatus) LegStatus() TransactionStatus {
	switch s {
	case TransferPending:
		return TransactionPending
	case TransferProcessing:
		return TransactionProcessing
	case TransferSuccess:
		return TransactionSuccess
	case TransferFailed:
		return TransactionFailed
	case TransferCancelled:
		return TransactionCancelled
	case TransferReturned:
		return TransactionReturned
	}
	return TransactionFailed
}
