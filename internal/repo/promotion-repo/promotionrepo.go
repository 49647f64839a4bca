package promotionrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/internal/pg"
)

const promotionColumns = `
        id, name, description, promotion_code, promotion_type, status,
        start_date, end_date, bonus_points_multiplier, bonus_points_fixed,
        minimum_purchase_amount, usage_limit, usage_count, usage_limit_per_customer,
        minimum_tier, minimum_age, maximum_age, target_gender, target_city,
        target_state, exclusive_to_new_customers, created_at, updated_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanPromotion(row pgx.Row) (*domain.Promotion, error) {
	var p domain.Promotion
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.PromotionCode, &p.PromotionType,
		&p.Status, &p.StartDate, &p.EndDate, &p.BonusPointsMultiplier, &p.BonusPointsFixed,
		&p.MinimumPurchaseAmount, &p.UsageLimit, &p.UsageCount, &p.UsageLimitPerCustomer,
		&p.MinimumTier, &p.MinimumAge, &p.MaximumAge, &p.TargetGender, &p.TargetCity,
		&p.TargetState, &p.ExclusiveToNewCustomers, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindActive returns the applicable promotion catalog: status ACTIVE, inside
// the validity window, usage limit not exhausted. Ordered by id so first-match
// selection is deterministic across calls.
func (r *Repository) FindActive(ctx context.Context, now time.Time) ([]domain.Promotion, error) {
	query := `
        SELECT` + promotionColumns + `
        FROM promotions
        WHERE status = 'ACTIVE'
          AND (start_date IS NULL OR start_date <= $1)
          AND (end_date IS NULL OR end_date >= $1)
          AND (usage_limit = 0 OR usage_count < usage_limit)
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		zap.L().Error("can't get active promotions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var promotions []domain.Promotion
	for rows.Next() {
		promo, err := scanPromotion(rows)
		if err != nil {
			zap.L().Error("can't scan promotion row", zap.Error(err))
			return nil, err
		}
		promotions = append(promotions, *promo)
	}
	return promotions, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Promotion, error) {
	query := `SELECT` + promotionColumns + ` FROM promotions WHERE id = $1`
	promo, err := scanPromotion(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find promotion by id", zap.Error(err))
		return nil, err
	}
	return promo, nil
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	query := `SELECT` + promotionColumns + ` FROM promotions WHERE promotion_code = $1`
	promo, err := scanPromotion(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find promotion by code", zap.Error(err))
		return nil, err
	}
	return promo, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.Promotion) (*domain.Promotion, error) {
	query := `
        INSERT INTO promotions (name, description, promotion_code, promotion_type,
            status, start_date, end_date, bonus_points_multiplier, bonus_points_fixed,
            minimum_purchase_amount, usage_limit, usage_limit_per_customer, minimum_tier,
            minimum_age, maximum_age, target_gender, target_city, target_state,
            exclusive_to_new_customers)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
        RETURNING` + promotionColumns + `
    `
	created, err := scanPromotion(r.db.QueryRow(ctx, query,
		p.Name, p.Description, p.PromotionCode, p.PromotionType, p.Status,
		p.StartDate, p.EndDate, p.BonusPointsMultiplier, p.BonusPointsFixed,
		p.MinimumPurchaseAmount, p.UsageLimit, p.UsageLimitPerCustomer, p.MinimumTier,
		p.MinimumAge, p.MaximumAge, p.TargetGender, p.TargetCity, p.TargetState,
		p.ExclusiveToNewCustomers))
	if err != nil {
		zap.L().Error("can't create promotion", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.PromotionStatus) error {
	query := `UPDATE promotions SET status = $1, updated_at = now() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("can't update promotion status", zap.Error(err))
		return err
	}
	return nil
}

// IncrementUsage bumps the usage counter atomically on the promotion row.
// Not idempotent across retried requests.
func (r *Repository) IncrementUsage(ctx context.Context, id int64) error {
	query := `UPDATE promotions SET usage_count = usage_count + 1, updated_at = now() WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't increment promotion usage", zap.Error(err))
		return err
	}
	return nil
}
