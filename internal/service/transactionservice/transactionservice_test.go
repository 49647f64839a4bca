package transactionservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/rewardplus/loyalty/internal/apperr"
	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/internal/pg"
	"github.com/rewardplus/loyalty/pkg/clock"
	"github.com/rewardplus/loyalty/pkg/keymutex"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func f64Ptr(v float64) *float64 { return &v }

func i64Ptr(v int64) *int64 { return &v }

func NewMock(t *testing.T) (*Service, *MockRepo, *MockCustomerRepo, *MockPromotions, *MockLedger) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	customerRepo := NewMockCustomerRepo(ctrl)
	promotions := NewMockPromotions(ctrl)
	ledger := NewMockLedger(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	service := New(repo, customerRepo, promotions, ledger, txManager, keymutex.New(), clock.Fixed(testNow), 10)
	defer ctrl.Finish()
	return service, repo, customerRepo, promotions, ledger
}

func TestCalculatePoints(t *testing.T) {
	tests := []struct {
		name     string
		net      float64
		earnRate int
		promo    *domain.Promotion
		expected int64
	}{
		{
			name:     "Base rate only",
			net:      100,
			earnRate: 10,
			expected: 1000,
		},
		{
			name:     "Rounds net amount before applying the rate",
			net:      99.5,
			earnRate: 10,
			expected: 1000,
		},
		{
			name:     "Multiplier applies before fixed bonus",
			net:      10,
			earnRate: 10,
			promo:    &domain.Promotion{BonusPointsMultiplier: f64Ptr(2.0), BonusPointsFixed: i64Ptr(50)},
			expected: 250,
		},
		{
			name:     "Fixed bonus alone",
			net:      10,
			earnRate: 10,
			promo:    &domain.Promotion{BonusPointsFixed: i64Ptr(25)},
			expected: 125,
		},
		{
			name:     "Fractional multiplier keeps whole points",
			net:      10,
			earnRate: 10,
			promo:    &domain.Promotion{BonusPointsMultiplier: f64Ptr(1.25)},
			expected: 125,
		},
		{
			name:     "Zero net earns nothing",
			net:      0,
			earnRate: 10,
			expected: 0,
		},
		{
			name:     "Negative net earns nothing",
			net:      -5,
			earnRate: 10,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calculatePoints(tt.net, tt.earnRate, tt.promo))
		})
	}
}

func TestRecordPurchase(t *testing.T) {
	customer := &domain.Customer{ID: 1, Tier: domain.TierSilver, Status: domain.CustomerActive}

	tests := []struct {
		name           string
		amount         float64
		discount       float64
		prepareMock    func(repo *MockRepo, customerRepo *MockCustomerRepo, promotions *MockPromotions, ledger *MockLedger)
		expectedPoints int64
		expectedPromo  *int64
		expectedError  error
	}{
		{
			name:   "Credits earned points without promotion",
			amount: 50,
			prepareMock: func(repo *MockRepo, customerRepo *MockCustomerRepo, promotions *MockPromotions, ledger *MockLedger) {
				customerRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(customer, nil)
				promotions.EXPECT().FindApplicable(gomock.Any(), gomock.Any(), 50.0).Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
						return txn, nil
					},
				)
				ledger.EXPECT().Credit(gomock.Any(), int64(1), int64(500)).Return(nil)
			},
			expectedPoints: 500,
		},
		{
			name:     "Applies promotion bonus to the net amount",
			amount:   15,
			discount: 5,
			prepareMock: func(repo *MockRepo, customerRepo *MockCustomerRepo, promotions *MockPromotions, ledger *MockLedger) {
				customerRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(customer, nil)
				promotions.EXPECT().FindApplicable(gomock.Any(), gomock.Any(), 10.0).Return(&domain.Promotion{
					ID:                    3,
					BonusPointsMultiplier: f64Ptr(2.0),
					BonusPointsFixed:      i64Ptr(50),
				}, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
						return txn, nil
					},
				)
				ledger.EXPECT().Credit(gomock.Any(), int64(1), int64(250)).Return(nil)
			},
			expectedPoints: 250,
			expectedPromo:  i64Ptr(3),
		},
		{
			name:     "Discount covering the amount earns nothing and skips promotions",
			amount:   10,
			discount: 10,
			prepareMock: func(repo *MockRepo, customerRepo *MockCustomerRepo, promotions *MockPromotions, ledger *MockLedger) {
				customerRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(customer, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
						return txn, nil
					},
				)
			},
			expectedPoints: 0,
		},
		{
			name:   "Unknown customer is rejected",
			amount: 50,
			prepareMock: func(repo *MockRepo, customerRepo *MockCustomerRepo, promotions *MockPromotions, ledger *MockLedger) {
				customerRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(nil, nil)
			},
			expectedError: apperr.NotFound("customer", int64(1)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, customerRepo, promotions, ledger := NewMock(t)
			tt.prepareMock(repo, customerRepo, promotions, ledger)

			txn, err := service.RecordPurchase(context.Background(), 1, tt.amount, tt.discount, "STORE-01")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedPoints, txn.PointsEarned)
			assert.Equal(t, domain.TransactionCompleted, txn.Status)
			assert.Equal(t, testNow, txn.TransactionDate)
			assert.NotEmpty(t, txn.TransactionCode)
			if tt.expectedPromo != nil {
				assert.Equal(t, *tt.expectedPromo, *txn.AppliedPromotionID)
			} else {
				assert.Nil(t, txn.AppliedPromotionID)
			}
		})
	}
}
