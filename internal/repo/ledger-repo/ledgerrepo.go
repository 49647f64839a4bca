package ledgerrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/internal/pg"
)

const accountColumns = `
        id, customer_id, points_earned, points_redeemed, points_expired,
        points_adjusted, current_balance, lifetime_points, status,
        last_earned_date, last_redeemed_date, last_adjusted_date,
        points_expiration_date, created_at, updated_at`

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

func scanAccount(row pgx.Row) (*domain.LedgerAccount, error) {
	var a domain.LedgerAccount
	err := row.Scan(&a.ID, &a.CustomerID, &a.PointsEarned, &a.PointsRedeemed,
		&a.PointsExpired, &a.PointsAdjusted, &a.CurrentBalance, &a.LifetimePoints,
		&a.Status, &a.LastEarnedDate, &a.LastRedeemedDate, &a.LastAdjustedDate,
		&a.PointsExpirationDate, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) GetByCustomerID(ctx context.Context, customerID int64) (*domain.LedgerAccount, error) {
	query := `SELECT` + accountColumns + ` FROM ledger_accounts WHERE customer_id = $1`
	account, err := scanAccount(r.db.QueryRow(ctx, query, customerID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get ledger account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// GetByCustomerIDForUpdate takes a row lock on the account. Must run inside a
// transaction; the lock is the database half of the per-account critical
// section.
func (r *Repository) GetByCustomerIDForUpdate(ctx context.Context, customerID int64) (*domain.LedgerAccount, error) {
	query := `SELECT` + accountColumns + ` FROM ledger_accounts WHERE customer_id = $1 FOR UPDATE`
	account, err := scanAccount(r.db.QueryRow(ctx, query, customerID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock ledger account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) Create(ctx context.Context, account *domain.LedgerAccount) (*domain.LedgerAccount, error) {
	query := `
        INSERT INTO ledger_accounts (customer_id, points_earned, points_redeemed,
            points_expired, points_adjusted, current_balance, lifetime_points,
            status, last_earned_date, points_expiration_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING` + accountColumns + `
    `
	created, err := scanAccount(r.db.QueryRow(ctx, query,
		account.CustomerID, account.PointsEarned, account.PointsRedeemed,
		account.PointsExpired, account.PointsAdjusted, account.CurrentBalance,
		account.LifetimePoints, account.Status, account.LastEarnedDate,
		account.PointsExpirationDate))
	if err != nil {
		zap.L().Error("can't create ledger account", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) Update(ctx context.Context, account *domain.LedgerAccount) error {
	query := `
        UPDATE ledger_accounts
        SET points_earned = $1, points_redeemed = $2, points_expired = $3,
            points_adjusted = $4, current_balance = $5, lifetime_points = $6,
            status = $7, last_earned_date = $8, last_redeemed_date = $9,
            last_adjusted_date = $10, points_expiration_date = $11, updated_at = now()
        WHERE customer_id = $12
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			account.PointsEarned, account.PointsRedeemed, account.PointsExpired,
			account.PointsAdjusted, account.CurrentBalance, account.LifetimePoints,
			account.Status, account.LastEarnedDate, account.LastRedeemedDate,
			account.LastAdjustedDate, account.PointsExpirationDate, account.CustomerID)
		if err != nil {
			zap.L().Error("can't update ledger account", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

// FindExpiring returns active accounts whose points expiration date passed
// and that still carry points to expire.
func (r *Repository) FindExpiring(ctx context.Context, now time.Time, limit uint32) ([]domain.LedgerAccount, error) {
	query := `
        SELECT` + accountColumns + `
        FROM ledger_accounts
        WHERE points_expiration_date IS NOT NULL
          AND points_expiration_date <= $1
          AND current_balance - points_expired > 0
          AND status = 'ACTIVE'
        ORDER BY points_expiration_date ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, now, int(limit))
	if err != nil {
		zap.L().Error("can't get expiring accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.LedgerAccount
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			zap.L().Error("can't scan ledger account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	return accounts, nil
}
