package promotionservice

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
	FindActive(ctx context.Context, now time.Time) ([]domain.Promotion, error)
	FindByID(ctx context.Context, id int64) (*domain.Promotion, error)
	FindByCode(ctx context.Context, code string) (*domain.Promotion, error)
	Create(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PromotionStatus) error
	IncrementUsage(ctx context.Context, id int64) error
}

type Service struct {
	repo  Repo
	clock clock.Clock
}

func New(repo Repo, clk clock.Clock) *Service {
	return &Service{repo: repo, clock: clk}
}

// FindApplicable returns the first active promotion, in id order, whose
// criteria match the customer and purchase amount, recording one use against
// it. A nil promotion with a nil error means no promotion applies.
func (s *Service) FindApplicable(ctx context.Context, snapshot domain.CustomerSnapshot, amount float64) (*domain.Promotion, error) {
	promotions, err := s.repo.FindActive(ctx, s.clock.Now())
	if err != nil {
		zap.L().Error("failed to load active promotions", zap.Error(err))
		return nil, err
	}
	for i := range promotions {
		if !promotions[i].AppliesTo(snapshot, amount) {
			continue
		}
		if err := s.repo.IncrementUsage(ctx, promotions[i].ID); err != nil {
			zap.L().Error("failed to record promotion usage", zap.Error(err))
			return nil, err
		}
		return &promotions[i], nil
	}
	return nil, nil
}

func (s *Service) Create(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error) {
	if promotion.PromotionCode == "" {
		promotion.PromotionCode = codes.Promotion()
	}
	existing, err := s.repo.FindByCode(ctx, promotion.PromotionCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.DuplicateCode("promotion", promotion.PromotionCode)
	}
	if promotion.Status == "" {
		promotion.Status = domain.PromotionDraft
	}
	created, err := s.repo.Create(ctx, promotion)
	if err != nil {
		zap.L().Error("failed to create promotion", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Promotion, error) {
	promotion, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if promotion == nil {
		return nil, apperr.NotFound("promotion", id)
	}
	return promotion, nil
}

func (s *Service) GetActive(ctx context.Context) ([]domain.Promotion, error) {
	return s.repo.FindActive(ctx, s.clock.Now())
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.PromotionStatus) (*domain.Promotion, error) {
	promotion, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		zap.L().Error("failed to update promotion status", zap.Error(err))
		return nil, err
	}
	promotion.Status = status
	return promotion, nil
}
