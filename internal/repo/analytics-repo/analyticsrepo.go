package analyticsrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/internal/pg"
)

// Repository runs read-only aggregation queries for the reporting endpoints.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// groupCount runs a two-column GROUP BY query and returns value -> count.
func (r *Repository) groupCount(ctx context.Context, query string) (map[string]int64, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't run aggregation query", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			zap.L().Error("can't scan aggregation row", zap.Error(err))
			return nil, err
		}
		counts[key] = count
	}
	return counts, nil
}

func (r *Repository) CountCustomersByStatus(ctx context.Context) (map[string]int64, error) {
	return r.groupCount(ctx, `SELECT status, COUNT(*) FROM customers GROUP BY status`)
}

func (r *Repository) CountCustomersByTier(ctx context.Context) (map[string]int64, error) {
	return r.groupCount(ctx, `SELECT tier, COUNT(*) FROM customers GROUP BY tier`)
}

func (r *Repository) CountAccountsByStatus(ctx context.Context) (map[string]int64, error) {
	return r.groupCount(ctx, `SELECT status, COUNT(*) FROM ledger_accounts GROUP BY status`)
}

func (r *Repository) CountPromotionsByStatus(ctx context.Context) (map[string]int64, error) {
	return r.groupCount(ctx, `SELECT status, COUNT(*) FROM promotions GROUP BY status`)
}

func (r *Repository) CountRewardsByStatus(ctx context.Context) (map[string]int64, error) {
	return r.groupCount(ctx, `SELECT status, COUNT(*) FROM rewards GROUP BY status`)
}

func (r *Repository) CountRedemptionsByStatus(ctx context.Context) (map[string]int64, error) {
	return r.groupCount(ctx, `SELECT status, COUNT(*) FROM redemption_logs GROUP BY status`)
}

func (r *Repository) CountRedemptionsByChannel(ctx context.Context) (map[string]int64, error) {
	return r.groupCount(ctx, `SELECT channel, COUNT(*) FROM redemption_logs GROUP BY channel`)
}

// TransactionTotals computes the transaction counters in a single pass.
// Revenue counts completed transactions only.
func (r *Repository) TransactionTotals(ctx context.Context) (*domain.TransactionTotals, error) {
	query := `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status = 'COMPLETED'),
               COALESCE(SUM(net_amount) FILTER (WHERE status = 'COMPLETED'), 0)
        FROM transactions
    `
	var totals domain.TransactionTotals
	err := r.db.QueryRow(ctx, query).Scan(&totals.Total, &totals.Completed, &totals.Revenue)
	if err != nil {
		zap.L().Error("can't compute transaction totals", zap.Error(err))
		return nil, err
	}
	return &totals, nil
}

func (r *Repository) TopRedeemedRewards(ctx context.Context, limit int64) ([]domain.RewardRedemptionCount, error) {
	query := `
        SELECT id, name, quantity_redeemed
        FROM rewards
        WHERE quantity_redeemed > 0
        ORDER BY quantity_redeemed DESC, id ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get top redeemed rewards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var top []domain.RewardRedemptionCount
	for rows.Next() {
		var rc domain.RewardRedemptionCount
		if err := rows.Scan(&rc.RewardID, &rc.Name, &rc.QuantityRedeemed); err != nil {
			zap.L().Error("can't scan top reward row", zap.Error(err))
			return nil, err
		}
		top = append(top, rc)
	}
	return top, nil
}
