package customerrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/internal/pg"
)

const customerColumns = `
        id, customer_code, card_number, first_name, last_name, email, phone,
        date_of_birth, gender, city, state, tier, status, enrollment_date,
        created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.CustomerCode, &c.CardNumber, &c.FirstName, &c.LastName,
		&c.Email, &c.Phone, &c.DateOfBirth, &c.Gender, &c.City, &c.State,
		&c.Tier, &c.Status, &c.EnrollmentDate, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query := `SELECT` + customerColumns + ` FROM customers WHERE id = $1`
	customer, err := scanCustomer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find customer by id", zap.Error(err))
		return nil, err
	}
	return customer, nil
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*domain.Customer, error) {
	query := `SELECT` + customerColumns + ` FROM customers WHERE customer_code = $1`
	customer, err := scanCustomer(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find customer by code", zap.Error(err))
		return nil, err
	}
	return customer, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := `SELECT` + customerColumns + ` FROM customers WHERE email = $1`
	customer, err := scanCustomer(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find customer by email", zap.Error(err))
		return nil, err
	}
	return customer, nil
}

func (r *Repository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	query := `
        INSERT INTO customers (customer_code, card_number, first_name, last_name,
            email, phone, date_of_birth, gender, city, state, tier, status, enrollment_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING` + customerColumns + `
    `
	created, err := scanCustomer(r.db.QueryRow(ctx, query,
		c.CustomerCode, c.CardNumber, c.FirstName, c.LastName, c.Email, c.Phone,
		c.DateOfBirth, c.Gender, c.City, c.State, c.Tier, c.Status, c.EnrollmentDate))
	if err != nil {
		zap.L().Error("can't create customer", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) UpdateTier(ctx context.Context, id int64, tier domain.CustomerTier) error {
	query := `UPDATE customers SET tier = $1, updated_at = now() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, tier, id)
	if err != nil {
		zap.L().Error("can't update customer tier", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.CustomerStatus) error {
	query := `UPDATE customers SET status = $1, updated_at = now() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("can't update customer status", zap.Error(err))
		return err
	}
	return nil
}
