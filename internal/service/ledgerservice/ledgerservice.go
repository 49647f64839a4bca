package ledgerservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/rewardplus/loyalty/internal/apperr"
	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/internal/pg"
	"github.com/rewardplus/loyalty/pkg/clock"
	"github.com/rewardplus/loyalty/pkg/keymutex"
)

type Repo interface {
	GetByCustomerID(ctx context.Context, customerID int64) (*domain.LedgerAccount, error)
	GetByCustomerIDForUpdate(ctx context.Context, customerID int64) (*domain.LedgerAccount, error)
	Create(ctx context.Context, account *domain.LedgerAccount) (*domain.LedgerAccount, error)
	Update(ctx context.Context, account *domain.LedgerAccount) error
}

// Service owns every mutation of a customer's ledger account. Each operation
// is a single critical section: the per-customer lock serializes in-process
// callers, the transaction plus row lock serializes everything else.
type Service struct {
	repo      Repo
	txManager pg.TXManager
	locks     *keymutex.KeyMutex
	clock     clock.Clock
}

func New(repo Repo, txManager pg.TXManager, locks *keymutex.KeyMutex, clk clock.Clock) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		locks:     locks,
		clock:     clk,
	}
}

// CreateAccount opens the ledger account at enrollment. The welcome bonus is
// credited immediately as earned points.
func (s *Service) CreateAccount(ctx context.Context, customerID, welcomeBonus int64) (*domain.LedgerAccount, error) {
	account := &domain.LedgerAccount{
		CustomerID: customerID,
		Status:     domain.AccountActive,
	}
	account.AddPoints(welcomeBonus, s.clock.Now())

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		zap.L().Error("failed to create ledger account", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetAccount(ctx context.Context, customerID int64) (*domain.LedgerAccount, error) {
	account, err := s.repo.GetByCustomerID(ctx, customerID)
	if err != nil {
		zap.L().Error("failed to get ledger account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, apperr.NotFound("ledger account", customerID)
	}
	return account, nil
}

// AddPoints credits earned points. Non-positive amounts are silently ignored.
func (s *Service) AddPoints(ctx context.Context, customerID, points int64) (*domain.LedgerAccount, error) {
	return s.mutate(ctx, customerID, func(account *domain.LedgerAccount) error {
		account.AddPoints(points, s.clock.Now())
		return nil
	})
}

// RedeemPoints debits the balance, failing when the balance does not cover
// the amount.
func (s *Service) RedeemPoints(ctx context.Context, customerID, points int64) (*domain.LedgerAccount, error) {
	return s.mutate(ctx, customerID, func(account *domain.LedgerAccount) error {
		if account.CurrentBalance < points {
			return apperr.InsufficientBalance(customerID, account.CurrentBalance, points)
		}
		account.RedeemPoints(points, s.clock.Now())
		return nil
	})
}

// AdjustPoints applies a signed administrative correction. Negative deltas
// obey the same floor as redemptions.
func (s *Service) AdjustPoints(ctx context.Context, customerID, delta int64) (*domain.LedgerAccount, error) {
	return s.mutate(ctx, customerID, func(account *domain.LedgerAccount) error {
		if delta < 0 && -delta > account.CurrentBalance {
			return apperr.InsufficientBalance(customerID, account.CurrentBalance, -delta)
		}
		account.AdjustPoints(delta, s.clock.Now())
		return nil
	})
}

// ExpirePoints retires points. Amounts above the available balance are a
// silent no-op, not an error.
func (s *Service) ExpirePoints(ctx context.Context, customerID, points int64) (*domain.LedgerAccount, error) {
	return s.mutate(ctx, customerID, func(account *domain.LedgerAccount) error {
		account.ExpirePoints(points)
		return nil
	})
}

func (s *Service) mutate(ctx context.Context, customerID int64, op func(*domain.LedgerAccount) error) (*domain.LedgerAccount, error) {
	s.locks.Lock(customerID)
	defer s.locks.Unlock(customerID)

	var account *domain.LedgerAccount
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		account, err = s.repo.GetByCustomerIDForUpdate(ctx, customerID)
		if err != nil {
			zap.L().Error("failed to load ledger account", zap.Error(err))
			return err
		}
		if account == nil {
			return apperr.NotFound("ledger account", customerID)
		}
		if err := op(account); err != nil {
			return err
		}
		return s.repo.Update(ctx, account)
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// Credit and Debit are the transaction-scoped ledger operations used by the
// redemption and transaction engines. The caller must hold the account lock
// and run inside a transaction; they are the only sanctioned way for sibling
// components to move points.

func (s *Service) Credit(ctx context.Context, customerID, points int64) error {
	account, err := s.repo.GetByCustomerIDForUpdate(ctx, customerID)
	if err != nil {
		return err
	}
	if account == nil {
		return apperr.NotFound("ledger account", customerID)
	}
	account.AddPoints(points, s.clock.Now())
	return s.repo.Update(ctx, account)
}

func (s *Service) Debit(ctx context.Context, customerID, points int64) error {
	account, err := s.repo.GetByCustomerIDForUpdate(ctx, customerID)
	if err != nil {
		return err
	}
	if account == nil {
		return apperr.NotFound("ledger account", customerID)
	}
	if account.CurrentBalance < points {
		return apperr.InsufficientBalance(customerID, account.CurrentBalance, points)
	}
	account.RedeemPoints(points, s.clock.Now())
	return s.repo.Update(ctx, account)
}
