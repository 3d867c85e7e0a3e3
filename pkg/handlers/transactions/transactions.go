package transactions

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/horizonfin/banking/pkg/api"
	"github.com/horizonfin/banking/pkg/mapping"
	"github.com/horizonfin/banking/pkg/models"
	"github.com/horizonfin/banking/pkg/storage"
	"github.com/horizonfin/banking/pkg/sync"
)

const dateLayout = "2006-01-02"

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// Store is the storage surface the transaction handlers need.
type Store interface {
	storage.ConnectionReader
	storage.TransactionReader
}

// Handler holds the dependencies for transaction-related handlers.
type Handler struct {
	Store  Store
	Syncer sync.Syncer
	Logger *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(store Store, syncer sync.Syncer, logger *slog.Logger) *Handler {
	return &Handler{Store: store, Syncer: syncer, Logger: logger}
}

// ListTransactions serves the caller's transaction feed for one bank
// connection, newest first. Filters arrive as query parameters: status,
// start_date and end_date (inclusive, YYYY-MM-DD), limit and offset.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID := api.UserID(r)
	if userID == "" {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationError, "missing "+api.UserIDHeader+" header")
		return
	}

	bankID := r.URL.Query().Get("bankId")
	if bankID == "" {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationError, "bankId query parameter is required")
		return
	}

	conn, err := h.Store.GetConnection(r.Context(), bankID)
	if err != nil {
		api.WriteDomainError(w, err)
		return
	}
	if conn.UserId != userID {
		api.WriteError(w, http.StatusNotFound, api.CodeNotFound, "resource not found")
		return
	}

	params, err := parseListParams(r, bankID)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationError, err.Error())
		return
	}

	txs, err := h.Store.ListTransactions(r.Context(), params)
	if err != nil {
		api.WriteDomainError(w, err)
		return
	}

	apiTxs := make([]*api.Transaction, len(txs))
	for i := range txs {
		apiTxs[i] = mapping.ToApiTransaction(&txs[i])
	}

	api.WriteJSON(w, http.StatusOK, apiTxs)
}

// SyncBank triggers one sync pass for a bank connection. A concurrent
// trigger for the same connection gets a 409 rather than a second pass.
func (h *Handler) SyncBank(w http.ResponseWriter, r *http.Request, bankID string) {
	userID := api.UserID(r)
	if userID == "" {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationError, "missing "+api.UserIDHeader+" header")
		return
	}

	conn, err := h.Store.GetConnection(r.Context(), bankID)
	if err != nil {
		api.WriteDomainError(w, err)
		return
	}
	if conn.UserId != userID {
		api.WriteError(w, http.StatusNotFound, api.CodeNotFound, "resource not found")
		return
	}

	result, err := h.Syncer.Sync(r.Context(), bankID)
	if err != nil {
		api.WriteDomainError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, mapping.ToApiSyncResult(result))
}

func parseListParams(r *http.Request, bankID string) (storage.ListTransactionsParams, error) {
	q := r.URL.Query()
	params := storage.ListTransactionsParams{
		BankConnectionId: bankID,
		Limit:            defaultPageLimit,
	}

	if status := q.Get("status"); status != "" {
		params.Status = models.TransactionStatus(status)
	}

	if raw := q.Get("startDate"); raw != "" {
		start, err := time.Parse(dateLayout, raw)
		if err != nil {
			return params, &paramError{"startDate must be formatted as YYYY-MM-DD"}
		}
		params.StartDate = start
	}
	if raw := q.Get("endDate"); raw != "" {
		end, err := time.Parse(dateLayout, raw)
		if err != nil {
			return params, &paramError{"endDate must be formatted as YYYY-MM-DD"}
		}
		params.EndDate = end
	}
	if !params.StartDate.IsZero() && !params.EndDate.IsZero() && params.EndDate.Before(params.StartDate) {
		return params, &paramError{"endDate must not precede startDate"}
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || limit <= 0 {
			return params, &paramError{"limit must be a positive integer"}
		}
		if limit > maxPageLimit {
			limit = maxPageLimit
		}
		params.Limit = int32(limit)
	}
	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || offset < 0 {
			return params, &paramError{"offset must be a non-negative integer"}
		}
		params.Offset = int32(offset)
	}

	return params, nil
}

type paramError struct {
	msg string
}

func (e *paramError) Error() string { return e.msg }
