package analyticsservice

import (
	"context"

	"github.com/rewardplus/loyalty/internal/domain"
)

type Repo interface {
	CountCustomersByStatus(ctx context.Context) (map[string]int64, error)
	CountCustomersByTier(ctx context.Context) (map[string]int64, error)
	CountAccountsByStatus(ctx context.Context) (map[string]int64, error)
	CountPromotionsByStatus(ctx context.Context) (map[string]int64, error)
	CountRewardsByStatus(ctx context.Context) (map[string]int64, error)
	CountRedemptionsByStatus(ctx context.Context) (map[string]int64, error)
	CountRedemptionsByChannel(ctx context.Context) (map[string]int64, error)
	TransactionTotals(ctx context.Context) (*domain.TransactionTotals, error)
	TopRedeemedRewards(ctx context.Context, limit int64) ([]domain.RewardRedemptionCount, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

func sum(counts map[string]int64) int64 {
	var total int64
	for _, count := range counts {
		total += count
	}
	return total
}

// zeroFill makes every known enum value present in the map so empty buckets
// report an explicit zero.
func zeroFill[K ~string](counts map[string]int64, keys []K) map[string]int64 {
	if counts == nil {
		counts = make(map[string]int64, len(keys))
	}
	for _, key := range keys {
		if _, ok := counts[string(key)]; !ok {
			counts[string(key)] = 0
		}
	}
	return counts
}

func (s *Service) ProgramSummary(ctx context.Context) (*domain.ProgramSummary, error) {
	customers, err := s.repo.CountCustomersByStatus(ctx)
	if err != nil {
		return nil, err
	}
	tiers, err := s.TierDistribution(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := s.repo.CountAccountsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := s.repo.TransactionTotals(ctx)
	if err != nil {
		return nil, err
	}
	rewards, err := s.repo.CountRewardsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	promotions, err := s.repo.CountPromotionsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	redemptions, err := s.repo.CountRedemptionsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.ProgramSummary{
		TotalCustomers:        sum(customers),
		ActiveCustomers:       customers[string(domain.CustomerActive)],
		SuspendedCustomers:    customers[string(domain.CustomerSuspended)],
		TierDistribution:      tiers,
		ActiveLedgerAccounts:  accounts[string(domain.AccountActive)],
		TotalTransactions:     transactions.Total,
		CompletedTransactions: transactions.Completed,
		TotalRevenue:          transactions.Revenue,
		TotalRewards:          sum(rewards),
		ActiveRewards:         rewards[string(domain.RewardActive)],
		TotalPromotions:       sum(promotions),
		ActivePromotions:      promotions[string(domain.PromotionActive)],
		TotalRedemptions:      sum(redemptions),
		CompletedRedemptions:  redemptions[string(domain.RedemptionCompleted)],
	}, nil
}

func (s *Service) TierDistribution(ctx context.Context) (map[string]int64, error) {
	tiers, err := s.repo.CountCustomersByTier(ctx)
	if err != nil {
		return nil, err
	}
	return zeroFill(tiers, domain.AllTiers), nil
}

func (s *Service) RedemptionTrends(ctx context.Context) (*domain.RedemptionTrends, error) {
	byStatus, err := s.repo.CountRedemptionsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byChannel, err := s.repo.CountRedemptionsByChannel(ctx)
	if err != nil {
		return nil, err
	}
	topRewards, err := s.repo.TopRedeemedRewards(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &domain.RedemptionTrends{
		TotalRedemptions: sum(byStatus),
		ByStatus:         zeroFill(byStatus, domain.AllRedemptionStatuses),
		ByChannel:        zeroFill(byChannel, domain.AllRedemptionChannels),
		TopRewards:       topRewards,
	}, nil
}
