package expiry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/pkg/clock"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Sweeper, *MockLedgerRepo, *MockLedger, *MockRedemptionRepo) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledgerRepo := NewMockLedgerRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	redemptionRepo := NewMockRedemptionRepo(ctrl)
	sweeper := New(ledgerRepo, ledger, redemptionRepo, clock.Fixed(testNow))
	return sweeper, ledgerRepo, ledger, redemptionRepo
}

func TestSweeper_Start(t *testing.T) {
	sweeper, _, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sweeper.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestSweeper_run_closesPoolOnShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workerPool := NewMockWorkerPoolI(ctrl)
	workerPool.EXPECT().Close().Times(1)

	sweeper := &Sweeper{workerPool: workerPool, sweepInterval: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sweeper.run(ctx)
}

func TestSweeper_sweepAccounts(t *testing.T) {
	tests := []struct {
		name             string
		mockFindExpiring func(ctx context.Context, now time.Time, limit uint32) ([]domain.LedgerAccount, error)
		mockAddTask      func(ctx context.Context, task Task) error
		accountCount     int
	}{
		{
			name: "dispatches every expiring account",
			mockFindExpiring: func(ctx context.Context, now time.Time, limit uint32) ([]domain.LedgerAccount, error) {
				return []domain.LedgerAccount{
					{CustomerID: 1, CurrentBalance: 300, PointsExpired: 0},
					{CustomerID: 2, CurrentBalance: 150, PointsExpired: 50},
				}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			accountCount: 2,
		},
		{
			name: "stops when lookup fails",
			mockFindExpiring: func(ctx context.Context, now time.Time, limit uint32) ([]domain.LedgerAccount, error) {
				return nil, errors.New("failed to fetch expiring accounts")
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			accountCount: 0,
		},
		{
			name: "survives worker pool rejection",
			mockFindExpiring: func(ctx context.Context, now time.Time, limit uint32) ([]domain.LedgerAccount, error) {
				return []domain.LedgerAccount{
					{CustomerID: 1, CurrentBalance: 300},
				}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return errors.New("failed to add task to worker pool")
			},
			accountCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ledgerRepo := NewMockLedgerRepo(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			ledgerRepo.EXPECT().
				FindExpiring(gomock.Any(), testNow, gomock.Any()).
				DoAndReturn(tt.mockFindExpiring).
				Times(1)
			for i := 0; i < tt.accountCount; i++ {
				workerPool.EXPECT().
					AddTask(gomock.Any(), gomock.Any()).
					DoAndReturn(tt.mockAddTask).
					AnyTimes()
			}

			sweeper := &Sweeper{
				ledgerRepo: ledgerRepo,
				workerPool: workerPool,
				clock:      clock.Fixed(testNow),
				limit:      2,
			}

			logger := zap.NewExample()
			zap.ReplaceGlobals(logger)

			sweeper.sweepAccounts(context.Background())
		})
	}
}

func TestSweeper_expireAccount(t *testing.T) {
	tests := []struct {
		name        string
		account     domain.LedgerAccount
		prepareMock func(ledger *MockLedger)
		wantErr     bool
	}{
		{
			name:    "expires the remaining balance",
			account: domain.LedgerAccount{CustomerID: 7, CurrentBalance: 300, PointsExpired: 100},
			prepareMock: func(ledger *MockLedger) {
				ledger.EXPECT().
					ExpirePoints(gomock.Any(), int64(7), int64(200)).
					Return(&domain.LedgerAccount{CustomerID: 7}, nil)
			},
		},
		{
			name:        "skips accounts with nothing left",
			account:     domain.LedgerAccount{CustomerID: 8, CurrentBalance: 100, PointsExpired: 100},
			prepareMock: func(ledger *MockLedger) {},
		},
		{
			name:    "propagates ledger errors",
			account: domain.LedgerAccount{CustomerID: 9, CurrentBalance: 50},
			prepareMock: func(ledger *MockLedger) {
				ledger.EXPECT().
					ExpirePoints(gomock.Any(), int64(9), int64(50)).
					Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ledger := NewMockLedger(ctrl)
			tt.prepareMock(ledger)

			sweeper := &Sweeper{ledger: ledger, clock: clock.Fixed(testNow)}

			err := sweeper.expireAccount(context.Background(), tt.account)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSweeper_expireRedemption(t *testing.T) {
	tests := []struct {
		name        string
		log         domain.RedemptionLog
		prepareMock func(repo *MockRedemptionRepo)
		wantErr     bool
	}{
		{
			name: "flips the status to expired",
			log:  domain.RedemptionLog{ID: 15, RedemptionCode: "RDM-1", Status: domain.RedemptionCompleted},
			prepareMock: func(repo *MockRedemptionRepo) {
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, log *domain.RedemptionLog) error {
						assert.Equal(t, domain.RedemptionExpired, log.Status)
						assert.Equal(t, "RDM-1", log.RedemptionCode)
						return nil
					})
			},
		},
		{
			name: "propagates update errors",
			log:  domain.RedemptionLog{ID: 16, RedemptionCode: "RDM-2", Status: domain.RedemptionCompleted},
			prepareMock: func(repo *MockRedemptionRepo) {
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					Return(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			redemptionRepo := NewMockRedemptionRepo(ctrl)
			tt.prepareMock(redemptionRepo)

			sweeper := &Sweeper{redemptionRepo: redemptionRepo, clock: clock.Fixed(testNow)}

			err := sweeper.expireRedemption(context.Background(), tt.log)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
