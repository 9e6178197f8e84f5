package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const profileKeyPrefix = "roommate:profile:"

// ProfileRepository is a read-through Redis cache in front of another
// profile store. Only single-profile reads are cached; GetAll always hits
// the underlying store. Redis failures degrade to uncached reads.
type ProfileRepository struct {
	next   repository.ProfileRepository
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository(next repository.ProfileRepository, rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.With(zap.String("component", "profile_cache")),
	}
}

func profileKey(id int) string {
	return fmt.Sprintf("%s%d", profileKeyPrefix, id)
}

func (r *ProfileRepository) GetByID(ctx context.Context, id int) (*domain.Profile, error) {
	key := profileKey(id)

	raw, err := r.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var p domain.Profile
		if err := json.Unmarshal(raw, &p); err == nil {
			return &p, nil
		}
		// corrupt entry: drop it and fall through to the store
		_ = r.rdb.Del(ctx, key).Err()
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("profile cache read failed", zap.Int("profile_id", id), zap.Error(err))
	}

	p, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(p)
	if err == nil {
		if err := r.rdb.Set(ctx, key, data, r.ttl).Err(); err != nil {
			r.logger.Warn("profile cache write failed", zap.Int("profile_id", id), zap.Error(err))
		}
	}
	return p, nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	if err := r.next.Update(ctx, profile); err != nil {
		return err
	}
	if err := r.rdb.Del(ctx, profileKey(profile.ID)).Err(); err != nil {
		r.logger.Warn("profile cache invalidation failed", zap.Int("profile_id", profile.ID), zap.Error(err))
	}
	return nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	return r.next.Create(ctx, profile)
}

func (r *ProfileRepository) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	return r.next.GetByUsername(ctx, username)
}

func (r *ProfileRepository) GetAll(ctx context.Context) ([]*domain.Profile, error) {
	return r.next.GetAll(ctx)
}
