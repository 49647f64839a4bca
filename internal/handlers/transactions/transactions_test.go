package transactions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/rewardplus/loyalty/internal/apperr"
	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/internal/dto"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*TransactionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRecordPurchaseHandler(t *testing.T) {
	handler, service := NewMock(t)
	promoID := int64(7)
	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful purchase",
			body: `{"customer_id":42,"amount":120.5,"discount":20.5,"store_code":"STORE-01"}`,
			prepareMock: func() {
				service.EXPECT().
					RecordPurchase(gomock.Any(), int64(42), 120.5, 20.5, "STORE-01").
					Return(&domain.Transaction{
						ID:                 101,
						TransactionCode:    "TXN-5B0C22E9",
						CustomerID:         42,
						Amount:             120.5,
						DiscountApplied:    20.5,
						NetAmount:          100,
						PointsEarned:       1000,
						AppliedPromotionID: &promoID,
						Status:             domain.TransactionCompleted,
						StoreCode:          "STORE-01",
						TransactionDate:    testNow,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"customer_id":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:         "Missing amount",
			body:         `{"customer_id":42}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Customer not found",
			body: `{"customer_id":99,"amount":50}`,
			prepareMock: func() {
				service.EXPECT().
					RecordPurchase(gomock.Any(), int64(99), 50.0, 0.0, "").
					Return(nil, apperr.NotFound("customer", int64(99)))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			body: `{"customer_id":42,"amount":50}`,
			prepareMock: func() {
				service.EXPECT().
					RecordPurchase(gomock.Any(), int64(42), 50.0, 0.0, "").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.RecordPurchase(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.TransactionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "TXN-5B0C22E9", body.TransactionCode)
				assert.Equal(t, int64(1000), body.PointsEarned)
				assert.Equal(t, float64(100), body.NetAmount)
				assert.Equal(t, &promoID, body.AppliedPromotionID)
			}
		})
	}
}

func TestGetTransactionHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		code         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful retrieval",
			code: "TXN-5B0C22E9",
			prepareMock: func() {
				service.EXPECT().
					GetByCode(gomock.Any(), "TXN-5B0C22E9").
					Return(&domain.Transaction{TransactionCode: "TXN-5B0C22E9", CustomerID: 42}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Transaction not found",
			code: "TXN-UNKNOWN",
			prepareMock: func() {
				service.EXPECT().
					GetByCode(gomock.Any(), "TXN-UNKNOWN").
					Return(nil, apperr.NotFound("transaction", "TXN-UNKNOWN"))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/transactions/"+tt.code, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("code", tt.code)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()
			handler.GetTransaction(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestListByCustomerHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					ListByCustomer(gomock.Any(), int64(42)).
					Return([]domain.Transaction{
						{TransactionCode: "TXN-1", CustomerID: 42, TransactionDate: testNow},
						{TransactionCode: "TXN-2", CustomerID: 42, TransactionDate: testNow},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No transactions",
			prepareMock: func() {
				service.EXPECT().
					ListByCustomer(gomock.Any(), int64(42)).
					Return([]domain.Transaction{}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					ListByCustomer(gomock.Any(), int64(42)).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/customers/42/transactions", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("customerID", "42")
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()
			handler.ListByCustomer(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
