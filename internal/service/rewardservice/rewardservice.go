package rewardservice

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
	FindByID(ctx context.Context, id int64) (*domain.Reward, error)
	FindByCode(ctx context.Context, code string) (*domain.Reward, error)
	FindAvailable(ctx context.Context, now time.Time) ([]domain.Reward, error)
	Create(ctx context.Context, reward *domain.Reward) (*domain.Reward, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RewardStatus) error
}

type Service struct {
	repo  Repo
	clock clock.Clock
}

func New(repo Repo, clk clock.Clock) *Service {
	return &Service{repo: repo, clock: clk}
}

func (s *Service) Create(ctx context.Context, reward *domain.Reward) (*domain.Reward, error) {
	if reward.RewardCode == "" {
		reward.RewardCode = codes.Reward()
	}
	existing, err := s.repo.FindByCode(ctx, reward.RewardCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.DuplicateCode("reward", reward.RewardCode)
	}
	if reward.Status == "" {
		reward.Status = domain.RewardActive
	}
	created, err := s.repo.Create(ctx, reward)
	if err != nil {
		zap.L().Error("failed to create reward", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Reward, error) {
	reward, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reward == nil {
		return nil, apperr.NotFound("reward", id)
	}
	return reward, nil
}

func (s *Service) ListAvailable(ctx context.Context) ([]domain.Reward, error) {
	return s.repo.FindAvailable(ctx, s.clock.Now())
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.RewardStatus) (*domain.Reward, error) {
	reward, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		zap.L().Error("failed to update reward status", zap.Error(err))
		return nil, err
	}
	reward.Status = status
	return reward, nil
}
