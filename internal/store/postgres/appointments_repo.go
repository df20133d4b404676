package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun"

	"barberly/backend/internal/domain"
	"barberly/backend/internal/store"
)

type AppointmentRepo struct {
	db *bun.DB
}

func NewAppointmentRepo(db *bun.DB) *AppointmentRepo {
	return &AppointmentRepo{db: db}
}

func (r *AppointmentRepo) Create(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	m := domain.Appointment{
		ID:         appt.ID,
		ProviderID: appt.ProviderID,
		UserID:     appt.UserID,
		Date:       appt.Date,
		CreatedAt:  appt.CreatedAt,
	}

	_, err := r.db.NewInsert().Model(&m).Exec(ctx)
	if err != nil {
		var pgErr *pgconn.PgError
		// The unique index on (provider_id, date) is the commit-time
		// double-booking guard; surface it as a plain conflict.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.Appointment{}, store.ErrConflict
		}
		return domain.Appointment{}, err
	}

	return m, nil
}

func (r *AppointmentRepo) FindByProviderAndHour(ctx context.Context, providerID string, slot time.Time) (domain.Appointment, error) {
	var m domain.Appointment
	err := r.db.NewSelect().
		Model(&m).
		Where("provider_id = ?", providerID).
		Where("date = ?", slot).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Appointment{}, store.ErrNotFound
		}
		return domain.Appointment{}, err
	}
	return m, nil
}

func (r *AppointmentRepo) ListByProviderAndDay(ctx context.Context, providerID string, year int, month time.Month, day int) ([]domain.Appointment, error) {
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return r.listRange(ctx, providerID, dayStart, dayStart.AddDate(0, 0, 1))
}

func (r *AppointmentRepo) ListByProviderAndMonth(ctx context.Context, providerID string, year int, month time.Month) ([]domain.Appointment, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return r.listRange(ctx, providerID, monthStart, monthStart.AddDate(0, 1, 0))
}

func (r *AppointmentRepo) listRange(ctx context.Context, providerID string, from, to time.Time) ([]domain.Appointment, error) {
	var rows []domain.Appointment
	err := r.db.NewSelect().
		Model(&rows).
		Where("provider_id = ?", providerID).
		Where("date >= ?", from).
		Where("date < ?", to).
		OrderExpr("date ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
