package availability

import (
	"context"
	"time"

	"barberly/backend/internal/clock"
	"barberly/backend/internal/domain"
	"barberly/backend/internal/store"
)

// Service answers availability queries against a provider's calendar. It
// only reads; booking state in the store is the sole source of truth.
type Service struct {
	repo  store.AppointmentRepository
	clock clock.Clock
}

func NewService(repo store.AppointmentRepository, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.System{}
	}
	return &Service{repo: repo, clock: clk}
}

// Day returns one slot per business hour, ascending. For today, hours at
// or before the current hour are unavailable regardless of booking state;
// any other day is governed by occupancy alone.
func (s *Service) Day(ctx context.Context, providerID string, year int, month time.Month, day int) ([]domain.AvailabilitySlot, error) {
	appts, err := s.repo.ListByProviderAndDay(ctx, providerID, year, month, day)
	if err != nil {
		return nil, err
	}

	occupied := make(map[int]bool, len(appts))
	for _, appt := range appts {
		occupied[appt.Date.UTC().Hour()] = true
	}

	now := s.clock.Now().UTC()
	today := domain.SameDay(time.Date(year, month, day, 0, 0, 0, 0, time.UTC), now)

	slots := make([]domain.AvailabilitySlot, 0, domain.SlotsPerDay)
	for hour := domain.OpeningHour; hour <= domain.ClosingHour; hour++ {
		available := !occupied[hour]
		if today && hour <= now.Hour() {
			available = false
		}
		slots = append(slots, domain.AvailabilitySlot{Hour: hour, Available: available})
	}
	return slots, nil
}

// Month returns one entry per calendar day, ascending. A day is available
// while it still has at least one open slot; the time-of-day cutoff is the
// day view's concern, not the month view's.
func (s *Service) Month(ctx context.Context, providerID string, year int, month time.Month) ([]domain.AvailabilityDay, error) {
	appts, err := s.repo.ListByProviderAndMonth(ctx, providerID, year, month)
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int)
	for _, appt := range appts {
		counts[appt.Date.UTC().Day()]++
	}

	days := make([]domain.AvailabilityDay, 0, domain.DaysIn(year, month))
	for day := 1; day <= domain.DaysIn(year, month); day++ {
		days = append(days, domain.AvailabilityDay{
			Day:       day,
			Available: counts[day] < domain.SlotsPerDay,
		})
	}
	return days, nil
}
