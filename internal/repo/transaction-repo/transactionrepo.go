package transactionrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/internal/pg"
)

const transactionColumns = `
        id, transaction_code, customer_id, amount, discount_applied, net_amount,
        points_earned, applied_promotion_id, status, store_code, transaction_date, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(&t.ID, &t.TransactionCode, &t.CustomerID, &t.Amount,
		&t.DiscountApplied, &t.NetAmount, &t.PointsEarned, &t.AppliedPromotionID,
		&t.Status, &t.StoreCode, &t.TransactionDate, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (transaction_code, customer_id, amount,
            discount_applied, net_amount, points_earned, applied_promotion_id,
            status, store_code, transaction_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING` + transactionColumns + `
    `
	created, err := scanTransaction(r.db.QueryRow(ctx, query,
		t.TransactionCode, t.CustomerID, t.Amount, t.DiscountApplied, t.NetAmount,
		t.PointsEarned, t.AppliedPromotionID, t.Status, t.StoreCode, t.TransactionDate))
	if err != nil {
		zap.L().Error("can't create transaction", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*domain.Transaction, error) {
	query := `SELECT` + transactionColumns + ` FROM transactions WHERE transaction_code = $1`
	txn, err := scanTransaction(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find transaction by code", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) FindByCustomerID(ctx context.Context, customerID int64) ([]domain.Transaction, error) {
	query := `
        SELECT` + transactionColumns + `
        FROM transactions
        WHERE customer_id = $1
        ORDER BY transaction_date DESC
    `
	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		zap.L().Error("can't get customer transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, *txn)
	}
	return txns, nil
}
