package promotionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/internal/pg"
)

var promotionRowColumns = []string{
	"id", "name", "description", "promotion_code", "promotion_type", "status",
	"start_date", "end_date", "bonus_points_multiplier", "bonus_points_fixed",
	"minimum_purchase_amount", "usage_limit", "usage_count", "usage_limit_per_customer",
	"minimum_tier", "minimum_age", "maximum_age", "target_gender", "target_city",
	"target_state", "exclusive_to_new_customers", "created_at", "updated_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB
}

func promotionRow(p *domain.Promotion) *pgxmock.Rows {
	return pgxmock.NewRows(promotionRowColumns).AddRow(
		p.ID, p.Name, p.Description, p.PromotionCode, p.PromotionType, p.Status,
		p.StartDate, p.EndDate, p.BonusPointsMultiplier, p.BonusPointsFixed,
		p.MinimumPurchaseAmount, p.UsageLimit, p.UsageCount, p.UsageLimitPerCustomer,
		p.MinimumTier, p.MinimumAge, p.MaximumAge, p.TargetGender, p.TargetCity,
		p.TargetState, p.ExclusiveToNewCustomers, p.CreatedAt, p.UpdatedAt,
	)
}

func summerPromotion() *domain.Promotion {
	created := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	multiplier := 2.0
	return &domain.Promotion{
		ID:                    7,
		Name:                  "Summer double points",
		PromotionCode:         "PROMO-SUMMER",
		Status:                domain.PromotionActive,
		BonusPointsMultiplier: &multiplier,
		UsageLimit:            1000,
		UsageCount:            12,
		CreatedAt:             created,
		UpdatedAt:             created,
	}
}

func TestRepository_FindActive(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		wantLen   int
	}{
		{
			name: "Returns active promotions",
			mockSetup: func() {
				mock.ExpectQuery("FROM promotions").
					WithArgs(now).
					WillReturnRows(promotionRow(summerPromotion()))
			},
			expectErr: false,
			wantLen:   1,
		},
		{
			name: "No active promotions",
			mockSetup: func() {
				mock.ExpectQuery("FROM promotions").
					WithArgs(now).
					WillReturnRows(pgxmock.NewRows(promotionRowColumns))
			},
			expectErr: false,
			wantLen:   0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("FROM promotions").
					WithArgs(now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			promotions, err := repo.FindActive(context.Background(), now)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, promotions, tt.wantLen)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	query := `SELECT` + promotionColumns + ` FROM promotions WHERE id = $1`

	tests := []struct {
		name      string
		id        int64
		mockSetup func()
		result    *domain.Promotion
	}{
		{
			name: "Existing promotion",
			id:   7,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(int64(7)).
					WillReturnRows(promotionRow(summerPromotion()))
			},
			result: summerPromotion(),
		},
		{
			name: "No promotion returns nil",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(int64(99)).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)

			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindByCode(t *testing.T) {
	repo, mock := NewMock(t)

	query := `SELECT` + promotionColumns + ` FROM promotions WHERE promotion_code = $1`

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("PROMO-SUMMER").
		WillReturnRows(promotionRow(summerPromotion()))

	result, err := repo.FindByCode(context.Background(), "PROMO-SUMMER")
	assert.NoError(t, err)
	assert.Equal(t, summerPromotion(), result)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates promotion",
			mockSetup: func() {
				mock.ExpectQuery("INSERT INTO promotions").
					WithArgs(
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnRows(promotionRow(summerPromotion()))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("INSERT INTO promotions").
					WithArgs(
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), summerPromotion())

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, summerPromotion(), result)
			}
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE promotions SET status = $1, updated_at = now() WHERE id = $2`)).
		WithArgs(domain.PromotionPaused, int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateStatus(context.Background(), 7, domain.PromotionPaused)
	assert.NoError(t, err)
}

func TestRepository_IncrementUsage(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully increments usage",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE promotions SET usage_count = usage_count + 1, updated_at = now() WHERE id = $1`)).
					WithArgs(int64(7)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE promotions SET usage_count = usage_count + 1, updated_at = now() WHERE id = $1`)).
					WithArgs(int64(7)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.IncrementUsage(context.Background(), 7)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
