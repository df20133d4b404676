package store

import (
	"context"

	"github.com/google/uuid"

	"barberly/backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	// ListProviders returns every provider user except exceptUserID,
	// ordered by name.
	ListProviders(ctx context.Context, exceptUserID string) ([]domain.User, error)
}
