package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"barberly/backend/internal/domain"
	"barberly/backend/internal/service/scheduling"
	"barberly/backend/internal/service/users"
	"barberly/backend/internal/store"
)

type schedulingService interface {
	Create(ctx context.Context, in scheduling.CreateInput) (domain.Appointment, error)
}

type availabilityService interface {
	Day(ctx context.Context, providerID string, year int, month time.Month, day int) ([]domain.AvailabilitySlot, error)
	Month(ctx context.Context, providerID string, year int, month time.Month) ([]domain.AvailabilityDay, error)
}

type providersService interface {
	List(ctx context.Context, userID string) ([]domain.User, error)
	DayAppointments(ctx context.Context, providerID string, year int, month time.Month, day int) ([]domain.Appointment, error)
}

type usersService interface {
	Create(ctx context.Context, in users.CreateInput) (domain.User, error)
}

type Server struct {
	scheduling   schedulingService
	availability availabilityService
	providers    providersService
	users        usersService
	log          *slog.Logger
}

func NewServer(schedulingSvc schedulingService, availabilitySvc availabilityService, providersSvc providersService, usersSvc usersService, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		scheduling:   schedulingSvc,
		availability: availabilitySvc,
		providers:    providersSvc,
		users:        usersSvc,
		log:          log.With(slog.String("component", "http")),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /appointments", s.createAppointment)
	mux.HandleFunc("GET /providers", s.listProviders)
	mux.HandleFunc("GET /providers/{provider_id}/appointments", s.listProviderAppointments)
	mux.HandleFunc("GET /providers/{provider_id}/day-availability", s.dayAvailability)
	mux.HandleFunc("GET /providers/{provider_id}/month-availability", s.monthAvailability)
	mux.HandleFunc("POST /users", s.createUser)
	return mux
}

type createAppointmentRequest struct {
	ProviderID string `json:"provider_id"`
	UserID     string `json:"user_id"`
	Date       string `json:"date"`
}

func (s *Server) createAppointment(w http.ResponseWriter, r *http.Request) {
	var req createAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	req.ProviderID = strings.TrimSpace(req.ProviderID)
	req.UserID = strings.TrimSpace(req.UserID)
	if req.ProviderID == "" || req.UserID == "" {
		writeError(w, http.StatusBadRequest, "provider_id and user_id are required")
		return
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date")
		return
	}

	appt, err := s.scheduling.Create(r.Context(), scheduling.CreateInput{
		ProviderID: req.ProviderID,
		UserID:     req.UserID,
		Date:       date,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.log.Info("appointment created",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("provider_id", appt.ProviderID),
		slog.Time("date", appt.Date),
	)
	writeJSON(w, http.StatusCreated, appt)
}

func (s *Server) listProviders(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	list, err := s.providers.List(r.Context(), userID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if list == nil {
		list = []domain.User{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) listProviderAppointments(w http.ResponseWriter, r *http.Request) {
	providerID := r.PathValue("provider_id")
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}
	day, ok := intParam(w, r, "day", 1, 31)
	if !ok {
		return
	}

	appts, err := s.providers.DayAppointments(r.Context(), providerID, year, month, day)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if appts == nil {
		appts = []domain.Appointment{}
	}
	writeJSON(w, http.StatusOK, appts)
}

func (s *Server) dayAvailability(w http.ResponseWriter, r *http.Request) {
	providerID := r.PathValue("provider_id")
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}
	day, ok := intParam(w, r, "day", 1, 31)
	if !ok {
		return
	}

	slots, err := s.availability.Day(r.Context(), providerID, year, month, day)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, slots)
}

func (s *Server) monthAvailability(w http.ResponseWriter, r *http.Request) {
	providerID := r.PathValue("provider_id")
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}

	days, err := s.availability.Month(r.Context(), providerID, year, month)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Provider bool   `json:"provider"`
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	user, err := s.users.Create(r.Context(), users.CreateInput{
		Name:     req.Name,
		Email:    req.Email,
		Provider: req.Provider,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// writeServiceError maps typed service errors onto HTTP statuses. Booking
// validation failures are user-actionable; anything unrecognized is an
// infrastructure error.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *users.ValidationError
	switch {
	case errors.Is(err, scheduling.ErrPastDate),
		errors.Is(err, scheduling.ErrSelfBooking),
		errors.Is(err, scheduling.ErrOutsideHours):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, scheduling.ErrSlotTaken), errors.Is(err, store.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.As(err, &vErr):
		writeError(w, http.StatusBadRequest, vErr.Error())
	default:
		s.log.Error("request failed",
			slog.Any("err", err),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func yearMonthParams(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	year, ok := intParam(w, r, "year", 1, 9999)
	if !ok {
		return 0, 0, false
	}
	month, ok := intParam(w, r, "month", 1, 12)
	if !ok {
		return 0, 0, false
	}
	return year, time.Month(month), true
}

func intParam(w http.ResponseWriter, r *http.Request, name string, min, max int) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	n, err := strconv.Atoi(raw)
	if err != nil || n < min || n > max {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return n, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
