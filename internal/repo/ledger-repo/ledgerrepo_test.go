package ledgerrepo

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

var accountRowColumns = []string{
	"id", "customer_id", "points_earned", "points_redeemed", "points_expired",
	"points_adjusted", "current_balance", "lifetime_points", "status",
	"last_earned_date", "last_redeemed_date", "last_adjusted_date",
	"points_expiration_date", "created_at", "updated_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func accountRow(a *domain.LedgerAccount) *pgxmock.Rows {
	return pgxmock.NewRows(accountRowColumns).AddRow(
		a.ID, a.CustomerID, a.PointsEarned, a.PointsRedeemed, a.PointsExpired,
		a.PointsAdjusted, a.CurrentBalance, a.LifetimePoints, a.Status,
		a.LastEarnedDate, a.LastRedeemedDate, a.LastAdjustedDate,
		a.PointsExpirationDate, a.CreatedAt, a.UpdatedAt,
	)
}

func activeAccount() *domain.LedgerAccount {
	created := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	return &domain.LedgerAccount{
		ID:             1,
		CustomerID:     42,
		PointsEarned:   1500,
		PointsRedeemed: 500,
		CurrentBalance: 1000,
		LifetimePoints: 1500,
		Status:         domain.AccountActive,
		CreatedAt:      created,
		UpdatedAt:      created,
	}
}

func TestRepository_GetByCustomerID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `SELECT` + accountColumns + ` FROM ledger_accounts WHERE customer_id = $1`

	tests := []struct {
		name       string
		customerID int64
		mockSetup  func()
		expectErr  bool
		result     *domain.LedgerAccount
	}{
		{
			name:       "Existing account",
			customerID: 42,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(int64(42)).
					WillReturnRows(accountRow(activeAccount()))
			},
			expectErr: false,
			result:    activeAccount(),
		},
		{
			name:       "No account returns nil",
			customerID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(int64(99)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:       "Database error",
			customerID: 42,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(int64(42)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByCustomerID(context.Background(), tt.customerID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_GetByCustomerIDForUpdate(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `SELECT` + accountColumns + ` FROM ledger_accounts WHERE customer_id = $1 FOR UPDATE`

	tests := []struct {
		name       string
		customerID int64
		mockSetup  func()
		expectErr  bool
		result     *domain.LedgerAccount
	}{
		{
			name:       "Locks existing account",
			customerID: 42,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(int64(42)).
					WillReturnRows(accountRow(activeAccount()))
			},
			expectErr: false,
			result:    activeAccount(),
		},
		{
			name:       "No account returns nil",
			customerID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(int64(99)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByCustomerIDForUpdate(context.Background(), tt.customerID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		account   *domain.LedgerAccount
		mockSetup func()
		expectErr bool
	}{
		{
			name:    "Successfully creates account",
			account: activeAccount(),
			mockSetup: func() {
				mock.ExpectQuery("INSERT INTO ledger_accounts").
					WithArgs(int64(42), int64(1500), int64(500), int64(0), int64(0),
						int64(1000), int64(1500), domain.AccountActive, pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnRows(accountRow(activeAccount()))
			},
			expectErr: false,
		},
		{
			name:    "Database error",
			account: activeAccount(),
			mockSetup: func() {
				mock.ExpectQuery("INSERT INTO ledger_accounts").
					WithArgs(int64(42), int64(1500), int64(500), int64(0), int64(0),
						int64(1000), int64(1500), domain.AccountActive, pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.account)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, activeAccount(), result)
			}
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name      string
		account   *domain.LedgerAccount
		mockSetup func()
		expectErr bool
	}{
		{
			name:    "Successfully updates account",
			account: activeAccount(),
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
					mock.ExpectExec("UPDATE ledger_accounts").
						WithArgs(int64(1500), int64(500), int64(0), int64(0),
							int64(1000), int64(1500), domain.AccountActive,
							pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), int64(42)).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
			expectErr: false,
		},
		{
			name:    "Database error",
			account: activeAccount(),
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
					mock.ExpectExec("UPDATE ledger_accounts").
						WithArgs(int64(1500), int64(500), int64(0), int64(0),
							int64(1000), int64(1500), domain.AccountActive,
							pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), int64(42)).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Update(context.Background(), tt.account)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_FindExpiring(t *testing.T) {
	repo, mock, _ := NewMock(t)

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		wantLen   int
	}{
		{
			name: "Returns expiring accounts",
			mockSetup: func() {
				expiring := activeAccount()
				expired := now.Add(-24 * time.Hour)
				expiring.PointsExpirationDate = &expired
				mock.ExpectQuery("FROM ledger_accounts").
					WithArgs(now, 100).
					WillReturnRows(accountRow(expiring))
			},
			expectErr: false,
			wantLen:   1,
		},
		{
			name: "No expiring accounts",
			mockSetup: func() {
				mock.ExpectQuery("FROM ledger_accounts").
					WithArgs(now, 100).
					WillReturnRows(pgxmock.NewRows(accountRowColumns))
			},
			expectErr: false,
			wantLen:   0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("FROM ledger_accounts").
					WithArgs(now, 100).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			accounts, err := repo.FindExpiring(context.Background(), now, 100)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, accounts, tt.wantLen)
			}
		})
	}
}
