package transactionservice

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/rewardplus/loyalty/internal/apperr"
	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/internal/pg"
	"github.com/rewardplus/loyalty/pkg/clock"
	"github.com/rewardplus/loyalty/pkg/codes"
	"github.com/rewardplus/loyalty/pkg/keymutex"
)

type Repo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	FindByCode(ctx context.Context, code string) (*domain.Transaction, error)
	FindByCustomerID(ctx context.Context, customerID int64) ([]domain.Transaction, error)
}

type CustomerRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type Promotions interface {
	FindApplicable(ctx context.Context, snapshot domain.CustomerSnapshot, amount float64) (*domain.Promotion, error)
}

type Ledger interface {
	Credit(ctx context.Context, customerID, points int64) error
}

type Service struct {
	repo         Repo
	customerRepo CustomerRepo
	promotions   Promotions
	ledger       Ledger
	txManager    pg.TXManager
	locks        *keymutex.KeyMutex
	clock        clock.Clock
	earnRate     int
}

func New(
	repo Repo,
	customerRepo CustomerRepo,
	promotions Promotions,
	ledger Ledger,
	txManager pg.TXManager,
	locks *keymutex.KeyMutex,
	clk clock.Clock,
	earnRate int,
) *Service {
	return &Service{
		repo:         repo,
		customerRepo: customerRepo,
		promotions:   promotions,
		ledger:       ledger,
		txManager:    txManager,
		locks:        locks,
		clock:        clk,
		earnRate:     earnRate,
	}
}

// RecordPurchase stores the purchase, computes the points it earns and
// credits them to the customer's ledger, all inside one transaction under
// the customer's account lock.
func (s *Service) RecordPurchase(ctx context.Context, customerID int64, amount, discount float64, storeCode string) (*domain.Transaction, error) {
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

	var created *domain.Transaction
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		now := s.clock.Now()
		net := amount - discount

		var promo *domain.Promotion
		if net > 0 {
			var err error
			promo, err = s.promotions.FindApplicable(ctx, customer.Snapshot(now), net)
			if err != nil {
				return err
			}
		}
		points := calculatePoints(net, s.earnRate, promo)

		txn := &domain.Transaction{
			TransactionCode: codes.Transaction(),
			CustomerID:      customerID,
			Amount:          amount,
			DiscountApplied: discount,
			NetAmount:       net,
			PointsEarned:    points,
			StoreCode:       storeCode,
			Status:          domain.TransactionCompleted,
			TransactionDate: now,
		}
		if promo != nil {
			txn.AppliedPromotionID = &promo.ID
		}

		var err error
		created, err = s.repo.Create(ctx, txn)
		if err != nil {
			zap.L().Error("failed to create transaction", zap.Error(err))
			return err
		}
		if points > 0 {
			return s.ledger.Credit(ctx, customerID, points)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) GetByCode(ctx context.Context, code string) (*domain.Transaction, error) {
	txn, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperr.NotFound("transaction", code)
	}
	return txn, nil
}

func (s *Service) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Transaction, error) {
	return s.repo.FindByCustomerID(ctx, customerID)
}

// calculatePoints converts the net purchase amount to points at the earn
// rate, then applies the promotion bonus. The multiplier scales the base
// before the fixed bonus is added, and the whole-dollar rounding happens
// before the rate is applied.
func calculatePoints(net float64, earnRate int, promo *domain.Promotion) int64 {
	if net <= 0 {
		return 0
	}
	points := int64(math.Round(net)) * int64(earnRate)
	if promo != nil {
		if promo.BonusPointsMultiplier != nil {
			points = int64(math.Round(float64(points) * *promo.BonusPointsMultiplier))
		}
		if promo.BonusPointsFixed != nil {
			points += *promo.BonusPointsFixed
		}
	}
	if points < 0 {
		points = 0
	}
	return points
}
