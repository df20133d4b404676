package store

import (
	"context"
	"time"

	"barberly/backend/internal/domain"
)

// AppointmentRepository is the durable appointment store. Create must
// enforce the (provider_id, date) uniqueness invariant atomically and
// return ErrConflict when it is violated.
type AppointmentRepository interface {
	Create(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
	FindByProviderAndHour(ctx context.Context, providerID string, slot time.Time) (domain.Appointment, error)
	ListByProviderAndDay(ctx context.Context, providerID string, year int, month time.Month, day int) ([]domain.Appointment, error)
	ListByProviderAndMonth(ctx context.Context, providerID string, year int, month time.Month) ([]domain.Appointment, error)
}
