package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/repository"
)

// ProfileRepository keeps profiles in a map keyed by monotonically
// increasing ids. Reads hand out clones so callers never share state.
type ProfileRepository struct {
	mu       sync.RWMutex
	profiles map[int]*domain.Profile
	nextID   int
	now      func() time.Time
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{
		profiles: make(map[int]*domain.Profile),
		nextID:   1,
		now:      time.Now,
	}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.profiles {
		if p.Username == profile.Username {
			return domain.ErrProfileAlreadyExists
		}
	}

	now := r.now()
	profile.ID = r.nextID
	profile.CreatedAt = now
	profile.UpdatedAt = now
	r.nextID++
	r.profiles[profile.ID] = profile.Clone()
	return nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id int) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p.Clone(), nil
}

func (r *ProfileRepository) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.profiles {
		if p.Username == username {
			return p.Clone(), nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

// GetAll returns profiles in id order, matching the postgres store.
func (r *ProfileRepository) GetAll(ctx context.Context) ([]*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.profiles[profile.ID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	profile.Username = existing.Username
	profile.CreatedAt = existing.CreatedAt
	profile.UpdatedAt = r.now()
	r.profiles[profile.ID] = profile.Clone()
	return nil
}
