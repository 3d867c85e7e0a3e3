package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/horizonfin/banking/pkg/api"
	balance_mocks "github.com/horizonfin/banking/pkg/balance/mocks"
	"github.com/horizonfin/banking/pkg/models"
	"github.com/horizonfin/banking/pkg/secrets"
	storage_mocks "github.com/horizonfin/banking/pkg/storage/mocks"
	sync_mocks "github.com/horizonfin/banking/pkg/sync/mocks"
	transfer_mocks "github.com/horizonfin/banking/pkg/transfer/mocks"
)

const testKeyHex = "6368616e676520746869732070617373776f726420746f206120736563726574"

func newTestRouter(t *testing.T) (http.Handler, *storage_mocks.Storage) {
	t.Helper()

	keeper, err := secrets.NewKeeper(testKeyHex)
	assert.NoError(t, err)

	mockStorage := new(storage_mocks.Storage)
	router := NewRouter(Deps{
		Store:         mockStorage,
		Keeper:        keeper,
		Syncer:        new(sync_mocks.Syncer),
		Balances:      new(balance_mocks.Reader),
		Transfers:     new(transfer_mocks.Service),
		WebhookSecret: "webhook-secret",
		Logger:        slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
	})

	return router, mockStorage
}

func TestRouterRoutes(t *testing.T) {
	t.Run("List Banks", func(t *testing.T) {
		router, mockStorage := newTestRouter(t)

		mockStorage.On("ListConnectionsByUserID", mock.Anything, "user-1").
			Return([]models.BankConnection{{Id: "bank-1", UserId: "user-1"}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/banks", nil)
		req.Header.Set(api.UserIDHeader, "user-1")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Path Parameter Reaches Handler", func(t *testing.T) {
		router, mockStorage := newTestRouter(t)

		mockStorage.On("GetConnection", mock.Anything, "bank-42").
			Return(&models.BankConnection{Id: "bank-42", UserId: "user-1"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/banks/bank-42", nil)
		req.Header.Set(api.UserIDHeader, "user-1")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp api.BankConnection
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "bank-42", resp.Id)
	})

	t.Run("Unknown Route", func(t *testing.T) {
		router, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Unsigned Webhook Rejected", func(t *testing.T) {
		router, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/dwolla", bytes.NewReader([]byte(`{}`)))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
