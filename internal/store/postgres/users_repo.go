package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun"

	"barberly/backend/internal/domain"
	"barberly/backend/internal/store"
)

type UserRepo struct {
	db *bun.DB
}

func NewUserRepo(db *bun.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	m := domain.User{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Provider: user.Provider,
	}

	_, err := r.db.NewInsert().Model(&m).Exec(ctx)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.User{}, store.ErrConflict
		}
		return domain.User{}, err
	}
	return m, nil
}

func (r *UserRepo) FindByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	var m domain.User
	err := r.db.NewSelect().
		Model(&m).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, store.ErrNotFound
		}
		return domain.User{}, err
	}
	return m, nil
}

func (r *UserRepo) ListProviders(ctx context.Context, exceptUserID string) ([]domain.User, error) {
	var rows []domain.User
	q := r.db.NewSelect().
		Model(&rows).
		Where("provider = TRUE").
		OrderExpr("name ASC")
	if exceptUserID != "" {
		q = q.Where("id::text <> ?", exceptUserID)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	return rows, nil
}
