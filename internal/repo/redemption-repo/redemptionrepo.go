package redemptionrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/internal/pg"
)

const redemptionColumns = `
        id, redemption_code, voucher_code, customer_id, reward_id, points_redeemed,
        status, channel, redemption_date, expiry_date, used_date,
        cancellation_reason, notes, created_at, updated_at`

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

func scanRedemption(row pgx.Row) (*domain.RedemptionLog, error) {
	var l domain.RedemptionLog
	err := row.Scan(&l.ID, &l.RedemptionCode, &l.VoucherCode, &l.CustomerID,
		&l.RewardID, &l.PointsRedeemed, &l.Status, &l.Channel, &l.RedemptionDate,
		&l.ExpiryDate, &l.UsedDate, &l.CancellationReason, &l.Notes,
		&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repository) Create(ctx context.Context, l *domain.RedemptionLog) (*domain.RedemptionLog, error) {
	query := `
        INSERT INTO redemption_logs (redemption_code, voucher_code, customer_id,
            reward_id, points_redeemed, status, channel, redemption_date, expiry_date, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING` + redemptionColumns + `
    `
	created, err := scanRedemption(r.db.QueryRow(ctx, query,
		l.RedemptionCode, l.VoucherCode, l.CustomerID, l.RewardID, l.PointsRedeemed,
		l.Status, l.Channel, l.RedemptionDate, l.ExpiryDate, l.Notes))
	if err != nil {
		zap.L().Error("can't create redemption log", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.RedemptionLog, error) {
	query := `SELECT` + redemptionColumns + ` FROM redemption_logs WHERE id = $1`
	log, err := scanRedemption(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find redemption by id", zap.Error(err))
		return nil, err
	}
	return log, nil
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*domain.RedemptionLog, error) {
	query := `SELECT` + redemptionColumns + ` FROM redemption_logs WHERE redemption_code = $1`
	log, err := scanRedemption(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find redemption by code", zap.Error(err))
		return nil, err
	}
	return log, nil
}

func (r *Repository) FindByCustomerID(ctx context.Context, customerID int64) ([]domain.RedemptionLog, error) {
	query := `
        SELECT` + redemptionColumns + `
        FROM redemption_logs
        WHERE customer_id = $1
        ORDER BY redemption_date DESC
    `
	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		zap.L().Error("can't get customer redemptions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var logs []domain.RedemptionLog
	for rows.Next() {
		log, err := scanRedemption(rows)
		if err != nil {
			zap.L().Error("can't scan redemption row", zap.Error(err))
			return nil, err
		}
		logs = append(logs, *log)
	}
	return logs, nil
}

func (r *Repository) Update(ctx context.Context, l *domain.RedemptionLog) error {
	query := `
        UPDATE redemption_logs
        SET status = $1, used_date = $2, cancellation_reason = $3, notes = $4, updated_at = now()
        WHERE id = $5
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, l.Status, l.UsedDate, l.CancellationReason, l.Notes, l.ID)
		if err != nil {
			zap.L().Error("can't update redemption log", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

// FindExpired returns COMPLETED redemptions whose expiry date passed, for the
// background sweeper to flip to EXPIRED.
func (r *Repository) FindExpired(ctx context.Context, now time.Time, limit uint32) ([]domain.RedemptionLog, error) {
	query := `
        SELECT` + redemptionColumns + `
        FROM redemption_logs
        WHERE status = 'COMPLETED'
          AND expiry_date IS NOT NULL
          AND expiry_date < $1
        ORDER BY expiry_date ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, now, int(limit))
	if err != nil {
		zap.L().Error("can't get expired redemptions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var logs []domain.RedemptionLog
	for rows.Next() {
		log, err := scanRedemption(rows)
		if err != nil {
			zap.L().Error("can't scan redemption row", zap.Error(err))
			return nil, err
		}
		logs = append(logs, *log)
	}
	return logs, nil
}
