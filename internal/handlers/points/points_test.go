package points

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/rewardplus/loyalty/internal/apperr"
	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/internal/dto"
)

func NewMock(t *testing.T) (*PointsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withCustomerID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("customerID", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		customerID   string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name:       "Successful retrieval",
			customerID: "42",
			prepareMock: func() {
				service.EXPECT().
					GetAccount(gomock.Any(), int64(42)).
					Return(&domain.LedgerAccount{
						CustomerID:     42,
						CurrentBalance: 1500,
						PointsEarned:   5000,
						PointsRedeemed: 3400,
						PointsExpired:  30,
						PointsAdjusted: 130,
						LifetimePoints: 5200,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{
				CustomerID:       42,
				CurrentBalance:   1500,
				AvailableBalance: 1470,
				LifetimePoints:   5200,
				PointsEarned:     5000,
				PointsRedeemed:   3400,
				PointsExpired:    30,
				PointsAdjusted:   130,
			},
		},
		{
			name:       "Account not found",
			customerID: "99",
			prepareMock: func() {
				service.EXPECT().
					GetAccount(gomock.Any(), int64(99)).
					Return(nil, apperr.NotFound("ledger account", "99"))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid customer id",
			customerID:   "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:       "Internal server error",
			customerID: "42",
			prepareMock: func() {
				service.EXPECT().
					GetAccount(gomock.Any(), int64(42)).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/points", nil)
			r = withCustomerID(r, tt.customerID)
			w := httptest.NewRecorder()
			handler.GetBalance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestAddPointsHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful credit",
			body: `{"points":500}`,
			prepareMock: func() {
				service.EXPECT().
					AddPoints(gomock.Any(), int64(42), int64(500)).
					Return(&domain.LedgerAccount{CustomerID: 42, CurrentBalance: 500}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"points":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Account not found",
			body: `{"points":500}`,
			prepareMock: func() {
				service.EXPECT().
					AddPoints(gomock.Any(), int64(42), int64(500)).
					Return(nil, apperr.NotFound("ledger account", "42"))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/points/add", bytes.NewBufferString(tt.body))
			r = withCustomerID(r, "42")
			w := httptest.NewRecorder()
			handler.AddPoints(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestRedeemPointsHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful debit",
			body: `{"points":300}`,
			prepareMock: func() {
				service.EXPECT().
					RedeemPoints(gomock.Any(), int64(42), int64(300)).
					Return(&domain.LedgerAccount{CustomerID: 42, CurrentBalance: 200, PointsRedeemed: 300}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient balance",
			body: `{"points":900}`,
			prepareMock: func() {
				service.EXPECT().
					RedeemPoints(gomock.Any(), int64(42), int64(900)).
					Return(nil, apperr.InsufficientBalance(42, 500, 900))
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Internal server error",
			body: `{"points":300}`,
			prepareMock: func() {
				service.EXPECT().
					RedeemPoints(gomock.Any(), int64(42), int64(300)).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/points/redeem", bytes.NewBufferString(tt.body))
			r = withCustomerID(r, "42")
			w := httptest.NewRecorder()
			handler.RedeemPoints(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestAdjustPointsHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Positive adjustment",
			body: `{"delta":50,"reason":"support correction"}`,
			prepareMock: func() {
				service.EXPECT().
					AdjustPoints(gomock.Any(), int64(42), int64(50)).
					Return(&domain.LedgerAccount{CustomerID: 42, CurrentBalance: 550, PointsAdjusted: 50}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Negative adjustment below balance",
			body: `{"delta":-900}`,
			prepareMock: func() {
				service.EXPECT().
					AdjustPoints(gomock.Any(), int64(42), int64(-900)).
					Return(nil, apperr.InsufficientBalance(42, 500, 900))
			},
			expectedCode: http.StatusPaymentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/points/adjust", bytes.NewBufferString(tt.body))
			r = withCustomerID(r, "42")
			w := httptest.NewRecorder()
			handler.AdjustPoints(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestExpirePointsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		ExpirePoints(gomock.Any(), int64(42), int64(30)).
		Return(&domain.LedgerAccount{CustomerID: 42, CurrentBalance: 470, PointsExpired: 30}, nil)

	r := httptest.NewRequest(http.MethodPost, "/points/expire", bytes.NewBufferString(`{"points":30}`))
	r = withCustomerID(r, "42")
	w := httptest.NewRecorder()
	handler.ExpirePoints(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.BalanceResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, int64(470), body.CurrentBalance)
	assert.Equal(t, int64(30), body.PointsExpired)
	assert.Equal(t, int64(440), body.AvailableBalance)
}
