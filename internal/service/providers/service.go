package providers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"barberly/backend/internal/cache"
	"barberly/backend/internal/domain"
	"barberly/backend/internal/store"
)

// Service serves provider-facing listing queries through a read-through
// cache. Every operation must return correct results when the cache is
// cold or unreachable; cache failures degrade to store reads.
type Service struct {
	users store.UserRepository
	appts store.AppointmentRepository
	cache cache.Provider
	log   *slog.Logger
}

func NewService(users store.UserRepository, appts store.AppointmentRepository, cacheProvider cache.Provider, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		users: users,
		appts: appts,
		cache: cacheProvider,
		log:   log.With(slog.String("component", "providers")),
	}
}

// List returns every provider except the requesting user.
func (s *Service) List(ctx context.Context, userID string) ([]domain.User, error) {
	key := cache.ProvidersListKey(userID)

	var users []domain.User
	if s.cachedInto(ctx, key, &users) {
		return users, nil
	}

	users, err := s.users.ListProviders(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.storeCached(ctx, key, users)
	return users, nil
}

// DayAppointments returns the provider's booked appointments for one day,
// ascending by hour. This is the cache partition the scheduling engine
// invalidates on every successful booking.
func (s *Service) DayAppointments(ctx context.Context, providerID string, year int, month time.Month, day int) ([]domain.Appointment, error) {
	key := cache.ProviderAppointmentsKey(providerID, year, month, day)

	var appts []domain.Appointment
	if s.cachedInto(ctx, key, &appts) {
		return appts, nil
	}

	appts, err := s.appts.ListByProviderAndDay(ctx, providerID, year, month, day)
	if err != nil {
		return nil, err
	}

	s.storeCached(ctx, key, appts)
	return appts, nil
}

func (s *Service) cachedInto(ctx context.Context, key string, out any) bool {
	blob, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.log.Warn("cache read failed", slog.Any("err", err), slog.String("key", key))
		}
		return false
	}
	if err := json.Unmarshal(blob, out); err != nil {
		s.log.Warn("cache entry malformed", slog.Any("err", err), slog.String("key", key))
		return false
	}
	return true
}

func (s *Service) storeCached(ctx context.Context, key string, value any) {
	blob, err := json.Marshal(value)
	if err != nil {
		s.log.Warn("cache encode failed", slog.Any("err", err), slog.String("key", key))
		return
	}
	if err := s.cache.Set(ctx, key, blob); err != nil {
		s.log.Warn("cache write failed", slog.Any("err", err), slog.String("key", key))
	}
}
