package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/horizonfin/banking/pkg/ledger"
	"github.com/horizonfin/banking/pkg/rail"
	"github.com/horizonfin/banking/pkg/storage"
	"github.com/horizonfin/banking/pkg/transfer"
)

// WriteJSON writes a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// WriteError writes the uniform error envelope.
func WriteError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	WriteJSON(w, status, ErrorResponse{Error: Error{Code: code, Message: message}})
}

// WriteDomainError maps a domain error onto the wire: a stable code and
// the right status. Unrecognized errors become opaque 500s; their detail
// goes to the log, not the client.
func WriteDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		WriteError(w, http.StatusNotFound, CodeNotFound, "resource not found")
	case errors.Is(err, storage.ErrSyncInProgress):
		WriteError(w, http.StatusConflict, CodeSyncInProgress, "a sync is already in progress for this connection")
	case errors.Is(err, storage.ErrTransferNotCancellable):
		WriteError(w, http.StatusConflict, CodeTransferNotCancellable, "transfer can no longer be cancelled")
	case errors.Is(err, transfer.ErrAmountOverLimit):
		WriteError(w, http.StatusUnprocessableEntity, CodeAmountOverLimit, "transfer amount exceeds the per-transfer limit")
	case errors.Is(err, transfer.ErrBankNotLinked):
		WriteError(w, http.StatusUnprocessableEntity, CodeBankNotLinked, "bank connection is not linked for transfers")
	case errors.Is(err, transfer.ErrRecipientNoBank):
		WriteError(w, http.StatusUnprocessableEntity, CodeRecipientNoBank, "recipient has no linked bank connection")
	case errors.Is(err, transfer.ErrAmountInvalid),
		errors.Is(err, transfer.ErrSelfTransfer),
		errors.Is(err, transfer.ErrSameBank):
		WriteError(w, http.StatusBadRequest, CodeValidationError, err.Error())
	case ledger.ReauthRequired(err):
		WriteError(w, http.StatusConflict, CodeReauthRequired, "bank connection requires re-authentication")
	default:
		var providerErr *ledger.ProviderError
		if errors.As(err, &providerErr) {
			WriteError(w, http.StatusBadGateway, CodeProviderError, "ledger provider is unavailable")
			return
		}
		var railErr *rail.Error
		if errors.As(err, &railErr) {
			WriteError(w, http.StatusBadGateway, CodePaymentProviderError, "payment provider is unavailable")
			return
		}
		slog.Error("unhandled domain error", "error", err)
		WriteError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
	}
}
