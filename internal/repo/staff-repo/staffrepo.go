package staffrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/rewardplus/loyalty/internal/domain"
	"github.com/rewardplus/loyalty/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.Staff, error) {
	query := `
        SELECT id, login, password_hash, created_at
        FROM staff
        WHERE login = $1
    `
	row := r.db.QueryRow(ctx, query, login)
	var staff domain.Staff
	err := row.Scan(&staff.ID, &staff.Login, &staff.PasswordHash, &staff.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find staff by login", zap.Error(err))
		return nil, err
	}
	return &staff, nil
}

func (r *Repository) Create(ctx context.Context, staff *domain.Staff) (*domain.Staff, error) {
	query := `
        INSERT INTO staff (login, password_hash)
        VALUES ($1, $2)
        RETURNING id, login, password_hash, created_at
    `
	row := r.db.QueryRow(ctx, query, staff.Login, staff.PasswordHash)
	var created domain.Staff
	err := row.Scan(&created.ID, &created.Login, &created.PasswordHash, &created.CreatedAt)
	if err != nil {
		zap.L().Error("can't create staff", zap.Error(err))
		return nil, err
	}
	return &created, nil
}
