package connections

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/horizonfin/banking/pkg/api"
	"github.com/horizonfin/banking/pkg/balance"
	"github.com/horizonfin/banking/pkg/mapping"
	"github.com/horizonfin/banking/pkg/models"
	"github.com/horizonfin/banking/pkg/secrets"
	"github.com/horizonfin/banking/pkg/storage"
)

// Handler holds the dependencies for bank-connection handlers.
type Handler struct {
	Store    storage.ConnectionStore
	Keeper   *secrets.Keeper
	Balances balance.Reader
	Logger   *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(store storage.ConnectionStore, keeper *secrets.Keeper, balances balance.Reader, logger *slog.Logger) *Handler {
	return &Handler{Store: store, Keeper: keeper, Balances: balances, Logger: logger}
}

// CreateBank links a new bank connection for the caller. The provider
// credential is sealed before the row is written; the plaintext is never
// stored or echoed back.
func (h *Handler) CreateBank(w http.ResponseWriter, r *http.Request) {
	userID := api.UserID(r)
	if userID == "" {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationError, "missing "+api.UserIDHeader+" header")
		return
	}

	var newConn api.NewBankConnection
	if err := json.NewDecoder(r.Body).Decode(&newConn); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationError, "invalid request body")
		return
	}
	if newConn.InstitutionId == "" || newConn.AccessToken == "" {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationError, "institution_id and access_token are required")
		return
	}

	sealed, err := h.Keeper.Seal(newConn.AccessToken)
	if err != nil {
		h.Logger.Error("failed to seal access credential", "error", err)
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternalError, "internal error")
		return
	}

	conn := &models.BankConnection{
		Id:               uuid.New().String(),
		UserId:           userID,
		AccessCredential: sealed,
		InstitutionId:    newConn.InstitutionId,
		InstitutionName:  newConn.InstitutionName,
		Status:           models.ConnectionActive,
	}
	if newConn.FundingSourceId != nil {
		conn.FundingSourceId = *newConn.FundingSourceId
	}
	if newConn.FundingAccountId != nil {
		conn.FundingAccountId = *newConn.FundingAccountId
	}

	created, err := h.Store.CreateConnection(r.Context(), conn)
	if err != nil {
		api.WriteDomainError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, mapping.ToApiBankConnection(created))
}

// ListBanks returns all of the caller's bank connections.
func (h *Handler) ListBanks(w http.ResponseWriter, r *http.Request) {
	userID := api.UserID(r)
	if userID == "" {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationError, "missing "+api.UserIDHeader+" header")
		return
	}

	conns, err := h.Store.ListConnectionsByUserID(r.Context(), userID)
	if err != nil {
		api.WriteDomainError(w, err)
		return
	}

	apiConns := make([]*api.BankConnection, len(conns))
	for i := range conns {
		apiConns[i] = mapping.ToApiBankConnection(&conns[i])
	}

	api.WriteJSON(w, http.StatusOK, apiConns)
}

// GetBank returns one of the caller's bank connections by id. Foreign
// connections are indistinguishable from missing ones.
func (h *Handler) GetBank(w http.ResponseWriter, r *http.Request, bankID string) {
	conn, ok := h.ownedConnection(w, r, bankID)
	if !ok {
		return
	}

	api.WriteJSON(w, http.StatusOK, mapping.ToApiBankConnection(conn))
}

// GetBankBalances returns provider balances for one connection with
// pending internal activity overlaid.
func (h *Handler) GetBankBalances(w http.ResponseWriter, r *http.Request, bankID string) {
	if _, ok := h.ownedConnection(w, r, bankID); !ok {
		return
	}

	overview, err := h.Balances.EffectiveBalances(r.Context(), bankID)
	if err != nil {
		api.WriteDomainError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, mapping.ToApiBalanceOverview(overview))
}

func (h *Handler) ownedConnection(w http.ResponseWriter, r *http.Request, bankID string) (*models.BankConnection, bool) {
	userID := api.UserID(r)
	if userID == "" {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationError, "missing "+api.UserIDHeader+" header")
		return nil, false
	}

	conn, err := h.Store.GetConnection(r.Context(), bankID)
	if err != nil {
		api.WriteDomainError(w, err)
		return nil, false
	}
	if conn.UserId != userID {
		api.WriteError(w, http.StatusNotFound, api.CodeNotFound, "resource not found")
		return nil, false
	}

	return conn, true
}
