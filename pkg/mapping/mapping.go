// Package mapping converts between the internal domain models and the API
// wire types.
package mapping

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/horizonfin/banking/pkg/api"
	"github.com/horizonfin/banking/pkg/balance"
	"github.com/horizonfin/banking/pkg/models"
	"github.com/horizonfin/banking/pkg/money"
	"github.com/horizonfin/banking/pkg/sync"
)

// ToApiBankConnection maps a domain bank connection to its API
// representation. The sealed credential and sync bookkeeping stay internal.
func ToApiBankConnection(conn *models.BankConnection) *api.BankConnection {
	apiConn := &api.BankConnection{
		Id:              conn.Id,
		UserId:          conn.UserId,
		InstitutionId:   conn.InstitutionId,
		InstitutionName: conn.InstitutionName,
		Status:          string(conn.Status),
		TransfersLinked: conn.RailLinked(),
		CreatedAt:       conn.CreatedAt,
		UpdatedAt:       conn.UpdatedAt,
	}

	if !conn.LastSyncedAt.IsZero() {
		t := conn.LastSyncedAt
		apiConn.LastSyncedAt = &t
	}

	return apiConn
}

// ToApiTransaction maps a domain transaction to its API representation.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	apiTx := &api.Transaction{
		Id:               tx.Id,
		BankConnectionId: tx.BankConnectionId,
		AccountId:        tx.AccountId,
		Amount:           money.Format(tx.AmountCents),
		Currency:         tx.Currency,
		Name:             tx.Name,
		Date:             openapi_types.Date{Time: tx.Date},
		Status:           string(tx.Status),
		Pending:          tx.Pending,
		Type:             string(tx.Type),
	}

	if tx.MerchantName != "" {
		apiTx.MerchantName = &tx.MerchantName
	}
	if tx.Category != "" {
		apiTx.Category = &tx.Category
	}
	if tx.Channel != "" {
		apiTx.Channel = &tx.Channel
	}
	if tx.TransferId != "" {
		apiTx.TransferId = &tx.TransferId
	}

	return apiTx
}

// ToApiTransfer maps a domain transfer to its API representation.
func ToApiTransfer(tf *models.Transfer) *api.Transfer {
	apiTf := &api.Transfer{
		Id:                tf.Id,
		UserId:            tf.UserId,
		Kind:              string(tf.Kind),
		SourceBankId:      tf.SourceBankId,
		DestinationBankId: tf.DestinationBankId,
		Amount:            money.Format(tf.AmountCents),
		Currency:          tf.Currency,
		Status:            string(tf.Status),
		CreatedAt:         tf.CreatedAt,
		UpdatedAt:         tf.UpdatedAt,
	}

	if tf.RecipientUserId != "" {
		apiTf.RecipientUserId = &tf.RecipientUserId
	}
	if tf.Note != "" {
		apiTf.Note = &tf.Note
	}
	if tf.RailTransferId != "" {
		apiTf.RailTransferId = &tf.RailTransferId
	}

	return apiTf
}

// ToApiSyncResult maps a sync pass result to its API representation.
func ToApiSyncResult(result *sync.Result) *api.SyncResult {
	return &api.SyncResult{
		Added:    result.Added,
		Modified: result.Modified,
		Removed:  result.Removed,
		Pages:    result.Pages,
		HasMore:  result.HasMore,
		Cursor:   result.Cursor,
	}
}

// ToApiBalanceOverview maps an effective balance overview to its API
// representation, rendering all cent amounts as decimal strings.
func ToApiBalanceOverview(overview *balance.Overview) *api.BalanceOverview {
	apiOverview := &api.BalanceOverview{
		BankConnectionId: overview.BankConnectionId,
		Accounts:         make([]api.AccountBalance, len(overview.Accounts)),
		Notes:            overview.Notes,
	}

	for i, acc := range overview.Accounts {
		apiOverview.Accounts[i] = api.AccountBalance{
			AccountId:          acc.AccountId,
			Name:               acc.Name,
			Mask:               acc.Mask,
			Type:               acc.Type,
			Subtype:            acc.Subtype,
			Currency:           acc.Currency,
			Current:            money.Format(acc.CurrentCents),
			Available:          money.Format(acc.AvailableCents),
			PendingAdjustment:  money.Format(acc.PendingAdjustmentCents),
			EffectiveAvailable: money.Format(acc.EffectiveAvailableCents),
		}
	}

	if overview.UnmatchedPendingCents != 0 {
		unmatched := money.Format(overview.UnmatchedPendingCents)
		apiOverview.UnmatchedPending = &unmatched
	}

	return apiOverview
}
