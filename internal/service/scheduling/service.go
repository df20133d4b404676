package scheduling

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"barberly/backend/internal/cache"
	"barberly/backend/internal/clock"
	"barberly/backend/internal/domain"
	"barberly/backend/internal/notify"
	"barberly/backend/internal/store"
)

// Caller-facing booking failures. All map to a bad-request class at the
// transport boundary; ErrSlotTaken additionally covers uniqueness
// violations surfaced by the store at commit time.
var (
	ErrPastDate     = errors.New("appointment date is in the past")
	ErrSelfBooking  = errors.New("provider and customer are the same user")
	ErrOutsideHours = errors.New("appointment hour is outside business hours")
	ErrSlotTaken    = errors.New("slot is already booked")
)

// Service validates and commits new appointments. It is the only writer of
// appointment state and the only caller of cache invalidation.
type Service struct {
	repo  store.AppointmentRepository
	sink  notify.Sink
	cache cache.Provider
	clock clock.Clock
	log   *slog.Logger
}

func NewService(repo store.AppointmentRepository, sink notify.Sink, cacheProvider cache.Provider, clk clock.Clock, log *slog.Logger) *Service {
	if clk == nil {
		clk = clock.System{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		repo:  repo,
		sink:  sink,
		cache: cacheProvider,
		clock: clk,
		log:   log.With(slog.String("component", "scheduling")),
	}
}

type CreateInput struct {
	ProviderID string
	UserID     string
	Date       time.Time
}

// Create runs the validation pipeline in a fixed order so the first
// violated rule is the one reported: past date, self booking, business
// hours, then slot conflict. On success the commit is followed by
// best-effort side effects that never roll it back.
func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Appointment, error) {
	slot := domain.SlotOf(in.Date)
	currentSlot := domain.SlotOf(s.clock.Now())

	if slot.Before(currentSlot) {
		return domain.Appointment{}, ErrPastDate
	}
	if in.UserID == in.ProviderID {
		return domain.Appointment{}, ErrSelfBooking
	}
	if !domain.WithinBusinessHours(slot) {
		return domain.Appointment{}, ErrOutsideHours
	}

	_, err := s.repo.FindByProviderAndHour(ctx, in.ProviderID, slot)
	if err == nil {
		return domain.Appointment{}, ErrSlotTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Appointment{}, err
	}

	appt, err := s.repo.Create(ctx, domain.Appointment{
		ProviderID: in.ProviderID,
		UserID:     in.UserID,
		Date:       slot,
	})
	if err != nil {
		// Two concurrent creates can both pass the read-side check; the
		// store's uniqueness guard decides the winner.
		if errors.Is(err, store.ErrConflict) {
			return domain.Appointment{}, ErrSlotTaken
		}
		return domain.Appointment{}, err
	}

	s.afterCommit(ctx, appt)

	return appt, nil
}

// afterCommit runs the notify-then-invalidate sequence. Failures are
// logged and swallowed: the appointment is already committed.
func (s *Service) afterCommit(ctx context.Context, appt domain.Appointment) {
	content := fmt.Sprintf("New appointment on %s at %s",
		appt.Date.Format("02/01/2006"), appt.Date.Format("15:04"))
	if err := s.sink.Notify(ctx, appt.ProviderID, content); err != nil {
		s.log.Warn("appointment notification failed",
			slog.Any("err", err),
			slog.String("provider_id", appt.ProviderID),
			slog.Time("date", appt.Date),
		)
	}

	key := cache.ProviderAppointmentsKey(appt.ProviderID, appt.Date.Year(), appt.Date.Month(), appt.Date.Day())
	if err := s.cache.Invalidate(ctx, key); err != nil {
		s.log.Warn("cache invalidation failed",
			slog.Any("err", err),
			slog.String("key", key),
		)
	}
}
