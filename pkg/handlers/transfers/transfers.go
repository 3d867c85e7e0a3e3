package transfers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/horizonfin/banking/pkg/api"
	"github.com/horizonfin/banking/pkg/mapping"
	"github.com/horizonfin/banking/pkg/money"
	"github.com/horizonfin/banking/pkg/storage"
	"github.com/horizonfin/banking/pkg/transfer"
)

// Handler holds the dependencies for transfer-related handlers.
type Handler struct {
	Service transfer.Service
	Store   storage.TransferReader
	Logger  *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(service transfer.Service, store storage.TransferReader, logger *slog.Logger) *Handler {
	return &Handler{Service: service, Store: store, Logger: logger}
}

// CreateTransfer initiates an internal transfer between two of the
// caller's linked banks.
func (h *Handler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	userID := api.UserID(r)
	if userID == "" {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationError, "missing "+api.UserIDHeader+" header")
		return
	}

	var newTransfer api.NewTransfer
	if err := json.NewDecoder(r.Body).Decode(&newTransfer); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationError, "invalid request body")
		return
	}

	cents, err := money.ParseCents(newTransfer.Amount)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationError, "amount must be a decimal string")
		return
	}

	params := transfer.InitiateParams{
		UserId:            userID,
		SourceBankId:      newTransfer.SourceBankId,
		DestinationBankId: newTransfer.DestinationBankId,
		AmountCents:       cents,
	}
	if newTransfer.Currency != nil {
		params.Currency = *newTransfer.Currency
	}
	if newTransfer.Note != nil {
		params.Note = *newTransfer.Note
	}

	created, err := h.Service.Initiate(r.Context(), params)
	if err != nil {
		api.WriteDomainError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, mapping.ToApiTransfer(created))
}

// CreateP2PTransfer initiates a peer-to-peer transfer to another user.
func (h *Handler) CreateP2PTransfer(w http.ResponseWriter, r *http.Request) {
	userID := api.UserID(r)
	if userID == "" {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationError, "missing "+api.UserIDHeader+" header")
		return
	}

	var newTransfer api.NewP2PTransfer
	if err := json.NewDecoder(r.Body).Decode(&newTransfer); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationError, "invalid request body")
		return
	}

	cents, err := money.ParseCents(newTransfer.Amount)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationError, "amount must be a decimal string")
		return
	}

	params := transfer.P2PParams{
		SenderUserId:    userID,
		RecipientUserId: newTransfer.RecipientUserId,
		SourceBankId:    newTransfer.SourceBankId,
		AmountCents:     cents,
	}
	if newTransfer.Currency != nil {
		params.Currency = *newTransfer.Currency
	}
	if newTransfer.Note != nil {
		params.Note = *newTransfer.Note
	}

	created, err := h.Service.CreateP2P(r.Context(), params)
	if err != nil {
		api.WriteDomainError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, mapping.ToApiTransfer(created))
}

// ListTransfers returns all transfers initiated by the caller, newest
// first.
func (h *Handler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	userID := api.UserID(r)
	if userID == "" {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationError, "missing "+api.UserIDHeader+" header")
		return
	}

	transfers, err := h.Store.ListTransfersByUserID(r.Context(), userID)
	if err != nil {
		api.WriteDomainError(w, err)
		return
	}

	apiTransfers := make([]*api.Transfer, len(transfers))
	for i := range transfers {
		apiTransfers[i] = mapping.ToApiTransfer(&transfers[i])
	}

	api.WriteJSON(w, http.StatusOK, apiTransfers)
}

// GetTransfer returns one transfer by id. Both the sender and, for P2P
// transfers, the recipient may read it; anyone else sees a 404.
func (h *Handler) GetTransfer(w http.ResponseWriter, r *http.Request, transferID string) {
	userID := api.UserID(r)
	if userID == "" {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationError, "missing "+api.UserIDHeader+" header")
		return
	}

	tf, err := h.Store.GetTransfer(r.Context(), transferID)
	if err != nil {
		api.WriteDomainError(w, err)
		return
	}
	if tf.UserId != userID && tf.RecipientUserId != userID {
		api.WriteError(w, http.StatusNotFound, api.CodeNotFound, "resource not found")
		return
	}

	api.WriteJSON(w, http.StatusOK, mapping.ToApiTransfer(tf))
}

// CancelTransfer cancels a PENDING transfer. Anything past PENDING is
// already with the payment rail and comes back as a 409.
func (h *Handler) CancelTransfer(w http.ResponseWriter, r *http.Request, transferID string) {
	userID := api.UserID(r)
	if userID == "" {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationError, "missing "+api.UserIDHeader+" header")
		return
	}

	cancelled, err := h.Service.Cancel(r.Context(), userID, transferID)
	if err != nil {
		api.WriteDomainError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, mapping.ToApiTransfer(cancelled))
}
