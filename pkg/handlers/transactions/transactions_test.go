package transactions

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/horizonfin/banking/pkg/api"
	"github.com/horizonfin/banking/pkg/ledger"
	"github.com/horizonfin/banking/pkg/models"
	"github.com/horizonfin/banking/pkg/storage"
	storage_mocks "github.com/horizonfin/banking/pkg/storage/mocks"
	"github.com/horizonfin/banking/pkg/sync"
	sync_mocks "github.com/horizonfin/banking/pkg/sync/mocks"
)

func newTestHandler(t *testing.T) (*Handler, *storage_mocks.Storage, *sync_mocks.Syncer) {
	t.Helper()

	mockStorage := new(storage_mocks.Storage)
	mockSyncer := new(sync_mocks.Syncer)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	return NewHandler(mockStorage, mockSyncer, logger), mockStorage, mockSyncer
}

func ownedConnection(mockStorage *storage_mocks.Storage, bankID, userID string) {
	mockStorage.On("GetConnection", mock.Anything, bankID).Return(&models.BankConnection{
		Id:     bankID,
		UserId: userID,
		Status: models.ConnectionActive,
	}, nil).Once()
}

func TestListTransactions(t *testing.T) {
	t.Run("Success With Filters", func(t *testing.T) {
		handler, mockStorage, _ := newTestHandler(t)
		ownedConnection(mockStorage, "bank-1", "user-1")

		mockStorage.On("ListTransactions", mock.Anything, mock.MatchedBy(func(params storage.ListTransactionsParams) bool {
			return params.BankConnectionId == "bank-1" &&
				params.Status == models.TransactionPending &&
				params.StartDate.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) &&
				params.EndDate.Equal(time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)) &&
				params.Limit == 10 &&
				params.Offset == 20
		})).Return([]models.Transaction{
			{
				Id:               "tx-1",
				BankConnectionId: "bank-1",
				AmountCents:      1250,
				Name:             "Coffee",
				Date:             time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
				Status:           models.TransactionPending,
				Type:             models.TypeDebit,
				Pending:          true,
			},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet,
			"/transactions?bankId=bank-1&status=PENDING&startDate=2026-01-01&endDate=2026-01-31&limit=10&offset=20", nil)
		req.Header.Set(api.UserIDHeader, "user-1")
		rr := httptest.NewRecorder()

		handler.ListTransactions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []*api.Transaction
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, "12.50", resp[0].Amount)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Missing Bank Id", func(t *testing.T) {
		handler, _, _ := newTestHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
		req.Header.Set(api.UserIDHeader, "user-1")
		rr := httptest.NewRecorder()

		handler.ListTransactions(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Invalid Date", func(t *testing.T) {
		handler, mockStorage, _ := newTestHandler(t)
		ownedConnection(mockStorage, "bank-1", "user-1")

		req := httptest.NewRequest(http.MethodGet, "/transactions?bankId=bank-1&startDate=01-01-2026", nil)
		req.Header.Set(api.UserIDHeader, "user-1")
		rr := httptest.NewRecorder()

		handler.ListTransactions(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Foreign Connection Hidden", func(t *testing.T) {
		handler, mockStorage, _ := newTestHandler(t)
		ownedConnection(mockStorage, "bank-1", "someone-else")

		req := httptest.NewRequest(http.MethodGet, "/transactions?bankId=bank-1", nil)
		req.Header.Set(api.UserIDHeader, "user-1")
		rr := httptest.NewRecorder()

		handler.ListTransactions(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestSyncBank(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockStorage, mockSyncer := newTestHandler(t)
		ownedConnection(mockStorage, "bank-1", "user-1")

		mockSyncer.On("Sync", mock.Anything, "bank-1").Return(&sync.Result{
			Added:  3,
			Pages:  1,
			Cursor: "cursor-1",
		}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/transactions/bank-1/sync", nil)
		req.Header.Set(api.UserIDHeader, "user-1")
		rr := httptest.NewRecorder()

		handler.SyncBank(rr, req, "bank-1")

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp api.SyncResult
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 3, resp.Added)
		mockSyncer.AssertExpectations(t)
	})

	t.Run("Sync In Progress", func(t *testing.T) {
		handler, mockStorage, mockSyncer := newTestHandler(t)
		ownedConnection(mockStorage, "bank-1", "user-1")

		mockSyncer.On("Sync", mock.Anything, "bank-1").Return(nil, storage.ErrSyncInProgress).Once()

		req := httptest.NewRequest(http.MethodPost, "/transactions/bank-1/sync", nil)
		req.Header.Set(api.UserIDHeader, "user-1")
		rr := httptest.NewRecorder()

		handler.SyncBank(rr, req, "bank-1")

		assert.Equal(t, http.StatusConflict, rr.Code)

		var resp api.ErrorResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, api.CodeSyncInProgress, resp.Error.Code)
	})

	t.Run("Reauth Required", func(t *testing.T) {
		handler, mockStorage, mockSyncer := newTestHandler(t)
		ownedConnection(mockStorage, "bank-1", "user-1")

		mockSyncer.On("Sync", mock.Anything, "bank-1").
			Return(nil, &ledger.ProviderError{Code: ledger.CodeReauthRequired}).Once()

		req := httptest.NewRequest(http.MethodPost, "/transactions/bank-1/sync", nil)
		req.Header.Set(api.UserIDHeader, "user-1")
		rr := httptest.NewRecorder()

		handler.SyncBank(rr, req, "bank-1")

		assert.Equal(t, http.StatusConflict, rr.Code)

		var resp api.ErrorResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, api.CodeReauthRequired, resp.Error.Code)
	})

	t.Run("Provider Unavailable", func(t *testing.T) {
		handler, mockStorage, mockSyncer := newTestHandler(t)
		ownedConnection(mockStorage, "bank-1", "user-1")

		mockSyncer.On("Sync", mock.Anything, "bank-1").
			Return(nil, &ledger.ProviderError{Code: ledger.CodeRateLimited}).Once()

		req := httptest.NewRequest(http.MethodPost, "/transactions/bank-1/sync", nil)
		req.Header.Set(api.UserIDHeader, "user-1")
		rr := httptest.NewRecorder()

		handler.SyncBank(rr, req, "bank-1")

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}
