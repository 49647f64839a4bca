package customerservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rewardplus/loyalty/internal/apperr"
	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/pkg/clock"
	"github.com/rewardplus/loyalty/pkg/codes"
)

type Repo interface {
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	FindByCode(ctx context.Context, code string) (*domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	UpdateTier(ctx context.Context, id int64, tier domain.CustomerTier) error
	UpdateStatus(ctx context.Context, id int64, status domain.CustomerStatus) error
}

type Ledger interface {
	CreateAccount(ctx context.Context, customerID, welcomeBonus int64) (*domain.LedgerAccount, error)
}

type Service struct {
	repo         Repo
	ledger       Ledger
	clock        clock.Clock
	welcomeBonus int64
}

func New(repo Repo, ledger Ledger, clk clock.Clock, welcomeBonus int64) *Service {
	return &Service{
		repo:         repo,
		ledger:       ledger,
		clock:        clk,
		welcomeBonus: welcomeBonus,
	}
}

type EnrollInput struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	CardNumber  string
	Gender      string
	City        string
	State       string
	DateOfBirth time.Time
}

// Enroll registers a customer, opens their ledger account and credits the
// welcome bonus.
func (s *Service) Enroll(ctx context.Context, input EnrollInput) (*domain.Customer, error) {
	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		zap.L().Error("failed to check email", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, apperr.DuplicateCode("customer", input.Email)
	}

	customer := &domain.Customer{
		CustomerCode:   codes.Customer(),
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Phone:          input.Phone,
		CardNumber:     input.CardNumber,
		Gender:         input.Gender,
		City:           input.City,
		State:          input.State,
		DateOfBirth:    input.DateOfBirth,
		Tier:           domain.TierBronze,
		Status:         domain.CustomerActive,
		EnrollmentDate: s.clock.Now(),
	}

	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		zap.L().Error("failed to create customer", zap.Error(err))
		return nil, err
	}

	if _, err := s.ledger.CreateAccount(ctx, created.ID, s.welcomeBonus); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperr.NotFound("customer", id)
	}
	return customer, nil
}

func (s *Service) GetByCode(ctx context.Context, code string) (*domain.Customer, error) {
	customer, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperr.NotFound("customer", code)
	}
	return customer, nil
}

func (s *Service) UpdateTier(ctx context.Context, id int64, tier domain.CustomerTier) (*domain.Customer, error) {
	customer, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateTier(ctx, id, tier); err != nil {
		zap.L().Error("failed to update tier", zap.Error(err))
		return nil, err
	}
	customer.Tier = tier
	return customer, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.CustomerStatus) (*domain.Customer, error) {
	customer, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		zap.L().Error("failed to update status", zap.Error(err))
		return nil, err
	}
	customer.Status = status
	return customer, nil
}
