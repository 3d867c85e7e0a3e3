package plaidapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/horizonfin/banking/pkg/ledger"
)

func TestGetTransactionDeltas(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/transactions/sync", r.URL.Path)

			var req syncRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "access-token", req.AccessToken)
			assert.Equal(t, "cursor-1", req.Cursor)

			json.NewEncoder(w).Encode(ledger.DeltaPage{
				Added: []ledger.DeltaTransaction{
					{Id: "tx1", AccountId: "acc1", Amount: "50.00", Date: "2026-08-30"},
				},
				NextCursor: "cursor-2",
				HasMore:    false,
			})
		}))
		defer server.Close()

		client := New(server.URL, "client-id", "secret")
		page, err := client.GetTransactionDeltas(context.Background(), "access-token", "cursor-1")

		assert.NoError(t, err)
		assert.Len(t, page.Added, 1)
		assert.Equal(t, "tx1", page.Added[0].Id)
		assert.Equal(t, "cursor-2", page.NextCursor)
		assert.False(t, page.HasMore)
	})

	t.Run("Login Required", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(apiError{
				ErrorType: "ITEM_ERROR",
				ErrorCode: "ITEM_LOGIN_REQUIRED",
				Message:   "the login details of this item have changed",
			})
		}))
		defer server.Close()

		client := New(server.URL, "client-id", "secret")
		_, err := client.GetTransactionDeltas(context.Background(), "access-token", "")

		assert.Error(t, err)
		assert.True(t, ledger.ReauthRequired(err))
	})

	t.Run("Rate Limited Is Retryable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(apiError{ErrorCode: "RATE_LIMIT_EXCEEDED"})
		}))
		defer server.Close()

		client := New(server.URL, "client-id", "secret")
		_, err := client.GetTransactionDeltas(context.Background(), "access-token", "")

		var pe *ledger.ProviderError
		assert.ErrorAs(t, err, &pe)
		assert.True(t, pe.Retryable())
	})
}

func TestGetAccounts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/balance/get", r.URL.Path)
		w.Write([]byte(`{
			"accounts": [
				{
					"account_id": "acc1",
					"name": "Checking",
					"mask": "0000",
					"type": "depository",
					"subtype": "checking",
					"balances": {"available": 110.50, "current": 120.25, "iso_currency_code": "USD"}
				},
				{
					"account_id": "acc2",
					"name": "Credit Card",
					"type": "credit",
					"balances": {"available": null, "current": 410, "limit": 2000, "iso_currency_code": "USD"}
				}
			]
		}`))
	}))
	defer server.Close()

	client := New(server.URL, "client-id", "secret")
	accounts, err := client.GetAccounts(context.Background(), "access-token")

	assert.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Equal(t, int64(11050), accounts[0].Balances.AvailableCents)
	assert.Equal(t, int64(12025), accounts[0].Balances.CurrentCents)
	assert.Equal(t, "USD", accounts[0].Balances.Currency)
	assert.Equal(t, int64(0), accounts[1].Balances.AvailableCents)
	assert.Equal(t, int64(200000), accounts[1].Balances.LimitCents)
}
