package redemptionservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rewardplus/loyalty/internal/apperr"
	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/internal/pg"
	"github.com/rewardplus/loyalty/pkg/clock"
	"github.com/rewardplus/loyalty/pkg/codes"
	"github.com/rewardplus/loyalty/pkg/keymutex"
)

type Repo interface {
	Create(ctx context.Context, log *domain.RedemptionLog) (*domain.RedemptionLog, error)
	FindByID(ctx context.Context, id int64) (*domain.RedemptionLog, error)
	FindByCode(ctx context.Context, code string) (*domain.RedemptionLog, error)
	FindByCustomerID(ctx context.Context, customerID int64) ([]domain.RedemptionLog, error)
	Update(ctx context.Context, log *domain.RedemptionLog) error
}

type CustomerRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type RewardRepo interface {
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Reward, error)
	IncrementRedeemed(ctx context.Context, id int64) error
	DecrementRedeemed(ctx context.Context, id int64) error
}

type Ledger interface {
	Credit(ctx context.Context, customerID, points int64) error
	Debit(ctx context.Context, customerID, points int64) error
}

type Service struct {
	repo         Repo
	customerRepo CustomerRepo
	rewardRepo   RewardRepo
	ledger       Ledger
	txManager    pg.TXManager
	locks        *keymutex.KeyMutex
	clock        clock.Clock
	voucherTTL   time.Duration
}

func New(
	repo Repo,
	customerRepo CustomerRepo,
	rewardRepo RewardRepo,
	ledger Ledger,
	txManager pg.TXManager,
	locks *keymutex.KeyMutex,
	clk clock.Clock,
	voucherTTLDays int,
) *Service {
	return &Service{
		repo:         repo,
		customerRepo: customerRepo,
		rewardRepo:   rewardRepo,
		ledger:       ledger,
		txManager:    txManager,
		locks:        locks,
		clock:        clk,
		voucherTTL:   time.Duration(voucherTTLDays) * 24 * time.Hour,
	}
}

// Redeem exchanges points for a reward voucher. Availability check, ledger
// debit, voucher creation and reward stock update run in one transaction
// under the customer's account lock, so a crash mid-flow rolls everything
// back and two concurrent redemptions cannot both pass the balance check.
func (s *Service) Redeem(ctx context.Context, customerID, rewardID int64, channel domain.RedemptionChannel, notes *string) (*domain.RedemptionLog, error) {
	if channel == "" {
		channel = domain.ChannelOnline
	}

	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		zap.L().Error("failed to load customer", zap.Error(err))
		return nil, err
	}
	if customer == nil {
		return nil, apperr.NotFound("customer", customerID)
	}

	s.locks.Lock(customerID)
	defer s.locks.Unlock(customerID)

	var created *domain.RedemptionLog
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		reward, err := s.rewardRepo.FindByIDForUpdate(ctx, rewardID)
		if err != nil {
			return err
		}
		if reward == nil {
			return apperr.NotFound("reward", rewardID)
		}
		now := s.clock.Now()
		if !reward.IsAvailable(now) {
			return apperr.RewardUnavailable(rewardID)
		}

		if err := s.ledger.Debit(ctx, customerID, reward.PointsRequired); err != nil {
			return err
		}

		log := &domain.RedemptionLog{
			RedemptionCode: codes.Redemption(),
			VoucherCode:    codes.Voucher(),
			CustomerID:     customerID,
			RewardID:       rewardID,
			PointsRedeemed: reward.PointsRequired,
			Status:         domain.RedemptionCompleted,
			Channel:        channel,
			RedemptionDate: now,
			Notes:          notes,
		}
		if s.voucherTTL > 0 {
			expiry := now.Add(s.voucherTTL)
			log.ExpiryDate = &expiry
		}

		created, err = s.repo.Create(ctx, log)
		if err != nil {
			zap.L().Error("failed to create redemption", zap.Error(err))
			return err
		}
		return s.rewardRepo.IncrementRedeemed(ctx, rewardID)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// MarkUsed consumes a voucher at a point of sale. Only a completed, unexpired
// and unused voucher can be consumed.
func (s *Service) MarkUsed(ctx context.Context, redemptionID int64) (*domain.RedemptionLog, error) {
	var updated *domain.RedemptionLog
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		log, err := s.repo.FindByID(ctx, redemptionID)
		if err != nil {
			return err
		}
		if log == nil {
			return apperr.NotFound("redemption", redemptionID)
		}
		now := s.clock.Now()
		if !log.IsValidForUse(now) {
			return apperr.InvalidStateTransition(redemptionID, string(log.Status), string(domain.RedemptionUsed))
		}
		log.MarkUsed(now)
		if err := s.repo.Update(ctx, log); err != nil {
			zap.L().Error("failed to mark redemption used", zap.Error(err))
			return err
		}
		updated = log
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Cancel voids a voucher, refunding the points and returning the reward to
// stock. A voucher that was already used cannot be cancelled; any other
// state can.
func (s *Service) Cancel(ctx context.Context, redemptionID int64, reason string) (*domain.RedemptionLog, error) {
	// The customer id is not known until the record is read, so it is read
	// once here only to pick the account lock, then re-read under the lock
	// inside the transaction before any state check or mutation.
	existing, err := s.repo.FindByID(ctx, redemptionID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("redemption", redemptionID)
	}

	s.locks.Lock(existing.CustomerID)
	defer s.locks.Unlock(existing.CustomerID)

	var updated *domain.RedemptionLog
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		log, err := s.repo.FindByID(ctx, redemptionID)
		if err != nil {
			return err
		}
		if log == nil {
			return apperr.NotFound("redemption", redemptionID)
		}
		if log.Status == domain.RedemptionUsed {
			return apperr.InvalidStateTransition(redemptionID, string(log.Status), string(domain.RedemptionCancelled))
		}

		if err := s.ledger.Credit(ctx, log.CustomerID, log.PointsRedeemed); err != nil {
			return err
		}
		if err := s.rewardRepo.DecrementRedeemed(ctx, log.RewardID); err != nil {
			return err
		}

		log.Cancel(reason)
		if err := s.repo.Update(ctx, log); err != nil {
			zap.L().Error("failed to cancel redemption", zap.Error(err))
			return err
		}
		updated = log
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.RedemptionLog, error) {
	log, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, apperr.NotFound("redemption", id)
	}
	return log, nil
}

func (s *Service) GetByCode(ctx context.Context, code string) (*domain.RedemptionLog, error) {
	log, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, apperr.NotFound("redemption", code)
	}
	return log, nil
}

func (s *Service) ListByCustomer(ctx context.Context, customerID int64) ([]domain.RedemptionLog, error) {
	return s.repo.FindByCustomerID(ctx, customerID)
}

// Validity reports the derived voucher state at the current time.
func (s *Service) Validity(log *domain.RedemptionLog) (expired, usable bool) {
	now := s.clock.Now()
	return log.IsExpired(now), log.IsValidForUse(now)
}
