package expiry

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/pkg/clock"
)

type LedgerRepo interface {
	FindExpiring(ctx context.Context, now time.Time, limit uint32) ([]domain.LedgerAccount, error)
}

type Ledger interface {
	ExpirePoints(ctx context.Context, customerID, points int64) (*domain.LedgerAccount, error)
}

type RedemptionRepo interface {
	FindExpired(ctx context.Context, now time.Time, limit uint32) ([]domain.RedemptionLog, error)
	Update(ctx context.Context, log *domain.RedemptionLog) error
}

// Sweeper periodically retires expired points and flips overdue vouchers to
// EXPIRED. Account expiry goes through the ledger service so it runs under the
// same per-customer lock as every other balance mutation.
type Sweeper struct {
	ledgerRepo     LedgerRepo
	ledger         Ledger
	redemptionRepo RedemptionRepo
	clock          clock.Clock
	limit          uint32
	workerPool     WorkerPoolI
	sweepInterval  time.Duration

	inFlightAccounts    sync.Map
	inFlightRedemptions sync.Map
}

func New(ledgerRepo LedgerRepo, ledger Ledger, redemptionRepo RedemptionRepo, clk clock.Clock) *Sweeper {
	return &Sweeper{
		ledgerRepo:     ledgerRepo,
		ledger:         ledger,
		redemptionRepo: redemptionRepo,
		clock:          clk,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		sweepInterval:  time.Minute,
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	zap.L().Info("Expiry sweeper started")
	go s.run(ctx)
}

func (s *Sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			s.workerPool.Close()
			return
		case <-ticker.C:
			s.sweepAccounts(ctx)
			s.sweepRedemptions(ctx)
		}
	}
}

func (s *Sweeper) sweepAccounts(ctx context.Context) {
	accounts, err := s.ledgerRepo.FindExpiring(ctx, s.clock.Now(), atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch expiring accounts", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, account := range accounts {
		account := account

		if _, loaded := s.inFlightAccounts.LoadOrStore(account.CustomerID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlightAccounts.Delete(account.CustomerID)
				return s.expireAccount(ctx, account)
			})
			if err != nil {
				s.inFlightAccounts.Delete(account.CustomerID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error expiring accounts", zap.Error(err))
	}
}

func (s *Sweeper) expireAccount(ctx context.Context, account domain.LedgerAccount) error {
	points := account.CurrentBalance - account.PointsExpired
	if points <= 0 {
		return nil
	}
	if _, err := s.ledger.ExpirePoints(ctx, account.CustomerID, points); err != nil {
		return fmt.Errorf("failed to expire points for customer %d: %w", account.CustomerID, err)
	}
	zap.L().Info("Points expired",
		zap.Int64("customerID", account.CustomerID),
		zap.Int64("points", points),
	)
	return nil
}

func (s *Sweeper) sweepRedemptions(ctx context.Context) {
	logs, err := s.redemptionRepo.FindExpired(ctx, s.clock.Now(), atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch expired redemptions", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, log := range logs {
		log := log

		if _, loaded := s.inFlightRedemptions.LoadOrStore(log.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlightRedemptions.Delete(log.ID)
				return s.expireRedemption(ctx, log)
			})
			if err != nil {
				s.inFlightRedemptions.Delete(log.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error expiring redemptions", zap.Error(err))
	}
}

func (s *Sweeper) expireRedemption(ctx context.Context, log domain.RedemptionLog) error {
	log.Status = domain.RedemptionExpired
	if err := s.redemptionRepo.Update(ctx, &log); err != nil {
		return fmt.Errorf("failed to expire redemption %s: %w", log.RedemptionCode, err)
	}
	zap.L().Info("Voucher expired", zap.String("redemptionCode", log.RedemptionCode))
	return nil
}
