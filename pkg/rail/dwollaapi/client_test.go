package dwollaapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/horizonfin/banking/pkg/rail"
)

func TestCreateTransfer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var server *httptest.Server
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/transfers", r.URL.Path)
			assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))

			var req transferRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "100.00", req.Amount.Value)
			assert.Contains(t, req.Links["source"].Href, "/funding-sources/fs-1")

			w.Header().Set("Location", server.URL+"/transfers/rail-abc")
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := New(server.URL, "token")
		id, err := client.CreateTransfer(context.Background(), rail.CreateTransferParams{
			SourceFundingId:      "fs-1",
			DestinationFundingId: "fs-2",
			Amount:               "100.00",
			Currency:             "USD",
		})

		assert.NoError(t, err)
		assert.Equal(t, "rail-abc", id)
	})

	t.Run("Rail Rejects", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := New(server.URL, "token")
		_, err := client.CreateTransfer(context.Background(), rail.CreateTransferParams{})

		var railErr *rail.Error
		assert.ErrorAs(t, err, &railErr)
	})
}

func TestCancelTransfer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transfers/rail-abc", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(server.URL, "token")
	assert.NoError(t, client.CancelTransfer(context.Background(), "rail-abc"))
}

func TestGetTransferStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transfers/rail-abc", r.URL.Path)
		json.NewEncoder(w).Encode(transferResource{Id: "rail-abc", Status: "processed"})
	}))
	defer server.Close()

	client := New(server.URL, "token")
	status, err := client.GetTransferStatus(context.Background(), "rail-abc")

	assert.NoError(t, err)
	assert.Equal(t, rail.StatusProcessed, status)
}
