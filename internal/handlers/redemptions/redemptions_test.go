package redemptions

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

func NewMock(t *testing.T) (*RedemptionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withRedemptionID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("redemptionID", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func completedLog() *domain.RedemptionLog {
	expiry := testNow.Add(90 * 24 * time.Hour)
	return &domain.RedemptionLog{
		ID:             15,
		RedemptionCode: "RDM-2C8A91D4",
		VoucherCode:    "VCH-7E01B3AF",
		CustomerID:     42,
		RewardID:       3,
		PointsRedeemed: 500,
		Status:         domain.RedemptionCompleted,
		Channel:        domain.ChannelOnline,
		RedemptionDate: testNow,
		ExpiryDate:     &expiry,
	}
}

func TestRedeemHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful redemption",
			body: `{"customer_id":42,"reward_id":3,"channel":"ONLINE"}`,
			prepareMock: func() {
				service.EXPECT().
					Redeem(gomock.Any(), int64(42), int64(3), domain.ChannelOnline, nil).
					Return(completedLog(), nil)
				service.EXPECT().
					Validity(gomock.Any()).
					Return(false, true)
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
			name:         "Missing reward id",
			body:         `{"customer_id":42}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Insufficient balance",
			body: `{"customer_id":42,"reward_id":3}`,
			prepareMock: func() {
				service.EXPECT().
					Redeem(gomock.Any(), int64(42), int64(3), domain.RedemptionChannel(""), nil).
					Return(nil, apperr.InsufficientBalance(42, 100, 500))
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Reward unavailable",
			body: `{"customer_id":42,"reward_id":3}`,
			prepareMock: func() {
				service.EXPECT().
					Redeem(gomock.Any(), int64(42), int64(3), domain.RedemptionChannel(""), nil).
					Return(nil, apperr.RewardUnavailable(3))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Customer not found",
			body: `{"customer_id":99,"reward_id":3}`,
			prepareMock: func() {
				service.EXPECT().
					Redeem(gomock.Any(), int64(99), int64(3), domain.RedemptionChannel(""), nil).
					Return(nil, apperr.NotFound("customer", int64(99)))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/redemptions", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Redeem(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.RedemptionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "RDM-2C8A91D4", body.RedemptionCode)
				assert.Equal(t, "VCH-7E01B3AF", body.VoucherCode)
				assert.Equal(t, int64(500), body.PointsRedeemed)
				assert.True(t, body.IsValidForUse)
			}
		})
	}
}

func TestMarkUsedHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		redemptionID string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:         "Successful use",
			redemptionID: "15",
			prepareMock: func() {
				used := completedLog()
				used.MarkUsed(testNow)
				service.EXPECT().
					MarkUsed(gomock.Any(), int64(15)).
					Return(used, nil)
				service.EXPECT().
					Validity(gomock.Any()).
					Return(false, false)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Already used",
			redemptionID: "15",
			prepareMock: func() {
				service.EXPECT().
					MarkUsed(gomock.Any(), int64(15)).
					Return(nil, apperr.InvalidStateTransition(15, "USED", "USED"))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Invalid id",
			redemptionID: "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/redemptions/15/use", nil)
			r = withRedemptionID(r, tt.redemptionID)
			w := httptest.NewRecorder()
			handler.MarkUsed(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCancelHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful cancellation",
			body: `{"reason":"customer request"}`,
			prepareMock: func() {
				cancelled := completedLog()
				cancelled.Cancel("customer request")
				service.EXPECT().
					Cancel(gomock.Any(), int64(15), "customer request").
					Return(cancelled, nil)
				service.EXPECT().
					Validity(gomock.Any()).
					Return(false, false)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing reason",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Used voucher",
			body: `{"reason":"customer request"}`,
			prepareMock: func() {
				service.EXPECT().
					Cancel(gomock.Any(), int64(15), "customer request").
					Return(nil, apperr.InvalidStateTransition(15, "USED", "CANCELLED"))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal server error",
			body: `{"reason":"customer request"}`,
			prepareMock: func() {
				service.EXPECT().
					Cancel(gomock.Any(), int64(15), "customer request").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/redemptions/15/cancel", bytes.NewBufferString(tt.body))
			r = withRedemptionID(r, "15")
			w := httptest.NewRecorder()
			handler.Cancel(w, r)
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
		expectedLen  int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					ListByCustomer(gomock.Any(), int64(42)).
					Return([]domain.RedemptionLog{*completedLog()}, nil)
				service.EXPECT().
					Validity(gomock.Any()).
					Return(false, true)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "No redemptions",
			prepareMock: func() {
				service.EXPECT().
					ListByCustomer(gomock.Any(), int64(42)).
					Return([]domain.RedemptionLog{}, nil)
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
			r := httptest.NewRequest(http.MethodGet, "/customers/42/redemptions", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("customerID", "42")
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()
			handler.ListByCustomer(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.RedemptionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}
