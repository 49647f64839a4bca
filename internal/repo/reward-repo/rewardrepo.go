package rewardrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/internal/pg"
)

const rewardColumns = `
        id, name, description, reward_code, points_required, quantity,
        quantity_redeemed, status, start_date, expiry_date, created_at, updated_at`

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

func scanReward(row pgx.Row) (*domain.Reward, error) {
	var rw domain.Reward
	err := row.Scan(&rw.ID, &rw.Name, &rw.Description, &rw.RewardCode,
		&rw.PointsRequired, &rw.Quantity, &rw.QuantityRedeemed, &rw.Status,
		&rw.StartDate, &rw.ExpiryDate, &rw.CreatedAt, &rw.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rw, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Reward, error) {
	query := `SELECT` + rewardColumns + ` FROM rewards WHERE id = $1`
	reward, err := scanReward(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find reward by id", zap.Error(err))
		return nil, err
	}
	return reward, nil
}

// FindByIDForUpdate locks the reward row for availability check plus quantity
// increment inside one transaction.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Reward, error) {
	query := `SELECT` + rewardColumns + ` FROM rewards WHERE id = $1 FOR UPDATE`
	reward, err := scanReward(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock reward", zap.Error(err))
		return nil, err
	}
	return reward, nil
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*domain.Reward, error) {
	query := `SELECT` + rewardColumns + ` FROM rewards WHERE reward_code = $1`
	reward, err := scanReward(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find reward by code", zap.Error(err))
		return nil, err
	}
	return reward, nil
}

func (r *Repository) FindAvailable(ctx context.Context, now time.Time) ([]domain.Reward, error) {
	query := `
        SELECT` + rewardColumns + `
        FROM rewards
        WHERE status = 'ACTIVE'
          AND (start_date IS NULL OR start_date <= $1)
          AND (expiry_date IS NULL OR expiry_date >= $1)
          AND (quantity = 0 OR quantity_redeemed < quantity)
        ORDER BY points_required ASC
    `
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		zap.L().Error("can't get available rewards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rewards []domain.Reward
	for rows.Next() {
		reward, err := scanReward(rows)
		if err != nil {
			zap.L().Error("can't scan reward row", zap.Error(err))
			return nil, err
		}
		rewards = append(rewards, *reward)
	}
	return rewards, nil
}

func (r *Repository) Create(ctx context.Context, rw *domain.Reward) (*domain.Reward, error) {
	query := `
        INSERT INTO rewards (name, description, reward_code, points_required,
            quantity, status, start_date, expiry_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING` + rewardColumns + `
    `
	created, err := scanReward(r.db.QueryRow(ctx, query,
		rw.Name, rw.Description, rw.RewardCode, rw.PointsRequired,
		rw.Quantity, rw.Status, rw.StartDate, rw.ExpiryDate))
	if err != nil {
		zap.L().Error("can't create reward", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.RewardStatus) error {
	query := `UPDATE rewards SET status = $1, updated_at = now() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("can't update reward status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) IncrementRedeemed(ctx context.Context, id int64) error {
	query := `UPDATE rewards SET quantity_redeemed = quantity_redeemed + 1, updated_at = now() WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't increment reward redemption count", zap.Error(err))
		return err
	}
	return nil
}

// DecrementRedeemed floors at zero.
func (r *Repository) DecrementRedeemed(ctx context.Context, id int64) error {
	query := `UPDATE rewards SET quantity_redeemed = GREATEST(quantity_redeemed - 1, 0), updated_at = now() WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't decrement reward redemption count", zap.Error(err))
		return err
	}
	return nil
}
