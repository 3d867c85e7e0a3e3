package transfers

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
	"github.com/horizonfin/banking/pkg/models"
	"github.com/horizonfin/banking/pkg/rail"
	"github.com/horizonfin/banking/pkg/storage"
	storage_mocks "github.com/horizonfin/banking/pkg/storage/mocks"
	"github.com/horizonfin/banking/pkg/transfer"
	transfer_mocks "github.com/horizonfin/banking/pkg/transfer/mocks"
)

func newTestHandler(t *testing.T) (*Handler, *transfer_mocks.Service, *storage_mocks.Storage) {
	t.Helper()

	mockService := new(transfer_mocks.Service)
	mockStorage := new(storage_mocks.Storage)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	return NewHandler(mockService, mockStorage, logger), mockService, mockStorage
}

func TestCreateTransfer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockService, _ := newTestHandler(t)

		mockService.On("Initiate", mock.Anything, transfer.InitiateParams{
			UserId:            "user-1",
			SourceBankId:      "bank-1",
			DestinationBankId: "bank-2",
			AmountCents:       7550,
			Note:              "rent",
		}).Return(&models.Transfer{
			Id:                "tf-1",
			UserId:            "user-1",
			Kind:              models.KindInternal,
			SourceBankId:      "bank-1",
			DestinationBankId: "bank-2",
			AmountCents:       7550,
			Currency:          "USD",
			Status:            models.TransferProcessing,
		}, nil).Once()

		note := "rent"
		body, _ := json.Marshal(api.NewTransfer{
			SourceBankId:      "bank-1",
			DestinationBankId: "bank-2",
			Amount:            "75.50",
			Note:              &note,
		})
		req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
		req.Header.Set(api.UserIDHeader, "user-1")
		rr := httptest.NewRecorder()

		handler.CreateTransfer(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp api.Transfer
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "75.50", resp.Amount)
		assert.Equal(t, "PROCESSING", resp.Status)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid Amount", func(t *testing.T) {
		handler, _, _ := newTestHandler(t)

		body, _ := json.Marshal(api.NewTransfer{
			SourceBankId:      "bank-1",
			DestinationBankId: "bank-2",
			Amount:            "seventy five",
		})
		req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
		req.Header.Set(api.UserIDHeader, "user-1")
		rr := httptest.NewRecorder()

		handler.CreateTransfer(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Bank Not Linked", func(t *testing.T) {
		handler, mockService, _ := newTestHandler(t)

		mockService.On("Initiate", mock.Anything, mock.Anything).
			Return(nil, transfer.ErrBankNotLinked).Once()

		body, _ := json.Marshal(api.NewTransfer{
			SourceBankId:      "bank-1",
			DestinationBankId: "bank-2",
			Amount:            "10.00",
		})
		req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
		req.Header.Set(api.UserIDHeader, "user-1")
		rr := httptest.NewRecorder()

		handler.CreateTransfer(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		var resp api.ErrorResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, api.CodeBankNotLinked, resp.Error.Code)
	})

	t.Run("Rail Down", func(t *testing.T) {
		handler, mockService, _ := newTestHandler(t)

		mockService.On("Initiate", mock.Anything, mock.Anything).
			Return(nil, &rail.Error{Op: "create"}).Once()

		body, _ := json.Marshal(api.NewTransfer{
			SourceBankId:      "bank-1",
			DestinationBankId: "bank-2",
			Amount:            "10.00",
		})
		req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
		req.Header.Set(api.UserIDHeader, "user-1")
		rr := httptest.NewRecorder()

		handler.CreateTransfer(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)

		var resp api.ErrorResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, api.CodePaymentProviderError, resp.Error.Code)
	})
}

func TestCreateP2PTransfer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockService, _ := newTestHandler(t)

		mockService.On("CreateP2P", mock.Anything, transfer.P2PParams{
			SenderUserId:    "user-1",
			RecipientUserId: "user-2",
			SourceBankId:    "bank-1",
			AmountCents:     2500,
		}).Return(&models.Transfer{
			Id:              "tf-1",
			UserId:          "user-1",
			Kind:            models.KindP2P,
			RecipientUserId: "user-2",
			AmountCents:     2500,
			Currency:        "USD",
			Status:          models.TransferProcessing,
		}, nil).Once()

		body, _ := json.Marshal(api.NewP2PTransfer{
			RecipientUserId: "user-2",
			SourceBankId:    "bank-1",
			Amount:          "25.00",
		})
		req := httptest.NewRequest(http.MethodPost, "/p2p/transfers", bytes.NewReader(body))
		req.Header.Set(api.UserIDHeader, "user-1")
		rr := httptest.NewRecorder()

		handler.CreateP2PTransfer(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp api.Transfer
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "user-2", *resp.RecipientUserId)
		mockService.AssertExpectations(t)
	})

	t.Run("Over Limit", func(t *testing.T) {
		handler, mockService, _ := newTestHandler(t)

		mockService.On("CreateP2P", mock.Anything, mock.Anything).
			Return(nil, transfer.ErrAmountOverLimit).Once()

		body, _ := json.Marshal(api.NewP2PTransfer{
			RecipientUserId: "user-2",
			SourceBankId:    "bank-1",
			Amount:          "2500.00",
		})
		req := httptest.NewRequest(http.MethodPost, "/p2p/transfers", bytes.NewReader(body))
		req.Header.Set(api.UserIDHeader, "user-1")
		rr := httptest.NewRecorder()

		handler.CreateP2PTransfer(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		var resp api.ErrorResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, api.CodeAmountOverLimit, resp.Error.Code)
	})

	t.Run("Recipient No Bank", func(t *testing.T) {
		handler, mockService, _ := newTestHandler(t)

		mockService.On("CreateP2P", mock.Anything, mock.Anything).
			Return(nil, transfer.ErrRecipientNoBank).Once()

		body, _ := json.Marshal(api.NewP2PTransfer{
			RecipientUserId: "user-2",
			SourceBankId:    "bank-1",
			Amount:          "10.00",
		})
		req := httptest.NewRequest(http.MethodPost, "/p2p/transfers", bytes.NewReader(body))
		req.Header.Set(api.UserIDHeader, "user-1")
		rr := httptest.NewRecorder()

		handler.CreateP2PTransfer(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		var resp api.ErrorResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, api.CodeRecipientNoBank, resp.Error.Code)
	})
}

func TestGetTransfer(t *testing.T) {
	t.Run("Recipient Can Read", func(t *testing.T) {
		handler, _, mockStorage := newTestHandler(t)

		mockStorage.On("GetTransfer", mock.Anything, "tf-1").Return(&models.Transfer{
			Id:              "tf-1",
			UserId:          "user-1",
			Kind:            models.KindP2P,
			RecipientUserId: "user-2",
			AmountCents:     2500,
			Status:          models.TransferSuccess,
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/transfers/tf-1", nil)
		req.Header.Set(api.UserIDHeader, "user-2")
		rr := httptest.NewRecorder()

		handler.GetTransfer(rr, req, "tf-1")

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Stranger Gets Not Found", func(t *testing.T) {
		handler, _, mockStorage := newTestHandler(t)

		mockStorage.On("GetTransfer", mock.Anything, "tf-1").Return(&models.Transfer{
			Id:     "tf-1",
			UserId: "user-1",
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/transfers/tf-1", nil)
		req.Header.Set(api.UserIDHeader, "user-9")
		rr := httptest.NewRecorder()

		handler.GetTransfer(rr, req, "tf-1")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Unknown Transfer", func(t *testing.T) {
		handler, _, mockStorage := newTestHandler(t)

		mockStorage.On("GetTransfer", mock.Anything, "tf-404").Return(nil, storage.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/transfers/tf-404", nil)
		req.Header.Set(api.UserIDHeader, "user-1")
		rr := httptest.NewRecorder()

		handler.GetTransfer(rr, req, "tf-404")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListTransfers(t *testing.T) {
	handler, _, mockStorage := newTestHandler(t)

	mockStorage.On("ListTransfersByUserID", mock.Anything, "user-1").Return([]models.Transfer{
		{Id: "tf-2", UserId: "user-1", Status: models.TransferProcessing},
		{Id: "tf-1", UserId: "user-1", Status: models.TransferSuccess},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/transfers", nil)
	req.Header.Set(api.UserIDHeader, "user-1")
	rr := httptest.NewRecorder()

	handler.ListTransfers(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []*api.Transfer
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 2)
	mockStorage.AssertExpectations(t)
}

func TestCancelTransfer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockService, _ := newTestHandler(t)

		mockService.On("Cancel", mock.Anything, "user-1", "tf-1").Return(&models.Transfer{
			Id:     "tf-1",
			UserId: "user-1",
			Status: models.TransferCancelled,
		}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/transfers/tf-1/cancel", nil)
		req.Header.Set(api.UserIDHeader, "user-1")
		rr := httptest.NewRecorder()

		handler.CancelTransfer(rr, req, "tf-1")

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp api.Transfer
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "CANCELLED", resp.Status)
	})

	t.Run("Not Cancellable", func(t *testing.T) {
		handler, mockService, _ := newTestHandler(t)

		mockService.On("Cancel", mock.Anything, "user-1", "tf-1").
			Return(nil, storage.ErrTransferNotCancellable).Once()

		req := httptest.NewRequest(http.MethodPost, "/transfers/tf-1/cancel", nil)
		req.Header.Set(api.UserIDHeader, "user-1")
		rr := httptest.NewRecorder()

		handler.CancelTransfer(rr, req, "tf-1")

		assert.Equal(t, http.StatusConflict, rr.Code)

		var resp api.ErrorResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, api.CodeTransferNotCancellable, resp.Error.Code)
	})
}
