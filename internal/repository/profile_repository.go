package repository

import (
	"context"

	"github.com/gdugdh24/roommate-backend/internal/domain"
)

// ProfileRepository is the profile store. GetAll returns a snapshot the
// caller may read freely for the duration of a request.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id int) (*domain.Profile, error)
	GetByUsername(ctx context.Context, username string) (*domain.Profile, error)
	GetAll(ctx context.Context) ([]*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
}
