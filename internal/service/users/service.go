package users

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"barberly/backend/internal/cache"
	"barberly/backend/internal/domain"
	"barberly/backend/internal/store"
)

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

type Service struct {
	repo  store.UserRepository
	cache cache.Provider
	log   *slog.Logger
}

func NewService(repo store.UserRepository, cacheProvider cache.Provider, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		repo:  repo,
		cache: cacheProvider,
		log:   log.With(slog.String("component", "users")),
	}
}

type CreateInput struct {
	Name     string
	Email    string
	Provider bool
}

// Create registers a user. A new provider changes what every cached
// provider listing should contain, so the whole providers-list partition
// is dropped, best-effort.
func (s *Service) Create(ctx context.Context, in CreateInput) (domain.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.User{}, validationError("name is required")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return domain.User{}, validationError("email is required")
	}

	user, err := s.repo.Create(ctx, domain.User{
		Name:     name,
		Email:    email,
		Provider: in.Provider,
	})
	if err != nil {
		return domain.User{}, err
	}

	if user.Provider {
		if err := s.cache.InvalidatePrefix(ctx, cache.ProvidersListPrefix); err != nil {
			s.log.Warn("providers-list invalidation failed", slog.Any("err", err))
		}
	}

	return user, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return s.repo.FindByID(ctx, id)
}
