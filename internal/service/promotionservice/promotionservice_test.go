package promotionservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/rewardplus/loyalty/internal/apperr"
	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/pkg/clock"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo, clock.Fixed(testNow))
	defer ctrl.Finish()
	return service, repo
}

func f64Ptr(v float64) *float64 { return &v }

func tierPtr(t domain.CustomerTier) *domain.CustomerTier { return &t }

func TestFindApplicable(t *testing.T) {
	service, repo := NewMock(t)

	snapshot := domain.CustomerSnapshot{CustomerID: 1, Tier: domain.TierSilver, Age: 30}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedID    int64
		expectNone    bool
		expectedError error
	}{
		{
			name: "First matching promotion wins in id order",
			prepareMock: func() {
				repo.EXPECT().FindActive(gomock.Any(), testNow).Return([]domain.Promotion{
					{ID: 1, Status: domain.PromotionActive, MinimumTier: tierPtr(domain.TierGold)},
					{ID: 2, Status: domain.PromotionActive, BonusPointsMultiplier: f64Ptr(1.5)},
					{ID: 3, Status: domain.PromotionActive, BonusPointsMultiplier: f64Ptr(3.0)},
				}, nil)
				repo.EXPECT().IncrementUsage(gomock.Any(), int64(2)).Return(nil)
			},
			expectedID: 2,
		},
		{
			name: "No match returns nil without recording usage",
			prepareMock: func() {
				repo.EXPECT().FindActive(gomock.Any(), testNow).Return([]domain.Promotion{
					{ID: 1, Status: domain.PromotionActive, MinimumTier: tierPtr(domain.TierPlatinum)},
				}, nil)
			},
			expectNone: true,
		},
		{
			name: "New-customer exclusives never match",
			prepareMock: func() {
				repo.EXPECT().FindActive(gomock.Any(), testNow).Return([]domain.Promotion{
					{ID: 1, Status: domain.PromotionActive, ExclusiveToNewCustomers: true},
				}, nil)
			},
			expectNone: true,
		},
		{
			name: "Repo error is returned",
			prepareMock: func() {
				repo.EXPECT().FindActive(gomock.Any(), testNow).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			promotion, err := service.FindApplicable(context.Background(), snapshot, 100)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			if tt.expectNone {
				assert.Nil(t, promotion)
			} else {
				assert.Equal(t, tt.expectedID, promotion.ID)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name          string
		promotion     *domain.Promotion
		prepareMock   func()
		check         func(t *testing.T, created *domain.Promotion)
		expectedError error
	}{
		{
			name:      "Defaults status to draft",
			promotion: &domain.Promotion{PromotionCode: "PROMO-SUMMER", Name: "Summer"},
			prepareMock: func() {
				repo.EXPECT().FindByCode(gomock.Any(), "PROMO-SUMMER").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Promotion) (*domain.Promotion, error) {
						p.ID = 10
						return p, nil
					},
				)
			},
			check: func(t *testing.T, created *domain.Promotion) {
				assert.Equal(t, domain.PromotionDraft, created.Status)
			},
		},
		{
			name:      "Generates code when empty",
			promotion: &domain.Promotion{Name: "Flash"},
			prepareMock: func() {
				repo.EXPECT().FindByCode(gomock.Any(), gomock.Any()).Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Promotion) (*domain.Promotion, error) {
						return p, nil
					},
				)
			},
			check: func(t *testing.T, created *domain.Promotion) {
				assert.NotEmpty(t, created.PromotionCode)
			},
		},
		{
			name:      "Duplicate code is rejected",
			promotion: &domain.Promotion{PromotionCode: "PROMO-SUMMER", Name: "Summer"},
			prepareMock: func() {
				repo.EXPECT().FindByCode(gomock.Any(), "PROMO-SUMMER").Return(&domain.Promotion{ID: 5}, nil)
			},
			expectedError: apperr.DuplicateCode("promotion", "PROMO-SUMMER"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			created, err := service.Create(context.Background(), tt.promotion)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				tt.check(t, created)
			}
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Activates an existing promotion",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&domain.Promotion{ID: 1, Status: domain.PromotionDraft}, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), domain.PromotionActive).Return(nil)
			},
		},
		{
			name: "Unknown promotion yields not found",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(nil, nil)
			},
			expectedError: apperr.NotFound("promotion", int64(1)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			promotion, err := service.UpdateStatus(context.Background(), 1, domain.PromotionActive)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.PromotionActive, promotion.Status)
			}
		})
	}
}
