package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/repository"
	"github.com/gdugdh24/roommate-backend/internal/repository/memory"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingRepo struct {
	repository.ProfileRepository
	gets int
}

func (c *countingRepo) GetByID(ctx context.Context, id int) (*domain.Profile, error) {
	c.gets++
	return c.ProfileRepository.GetByID(ctx, id)
}

func setup(t *testing.T) (*ProfileRepository, *countingRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	store := &countingRepo{ProfileRepository: memory.NewProfileRepository()}
	loc := "Bandra"
	require.NoError(t, store.Create(context.Background(), &domain.Profile{Username: "a", Location: &loc}))

	return NewProfileRepository(store, rdb, time.Minute, zap.NewNop()), store, mr
}

func TestProfileCache_ReadThrough(t *testing.T) {
	repo, store, mr := setup(t)
	ctx := context.Background()

	first, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, mr.Exists(profileKey(1)))

	second, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, store.gets, "second read served from redis")
	assert.Equal(t, *first.Location, *second.Location)
	assert.Equal(t, time.Minute, mr.TTL(profileKey(1)))
}

func TestProfileCache_UpdateInvalidates(t *testing.T) {
	repo, store, mr := setup(t)
	ctx := context.Background()

	p, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)

	loc := "Powai"
	p.Location = &loc
	require.NoError(t, repo.Update(ctx, p))
	assert.False(t, mr.Exists(profileKey(1)))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Powai", *got.Location)
	assert.Equal(t, 2, store.gets)
}

func TestProfileCache_CorruptEntry(t *testing.T) {
	repo, store, mr := setup(t)
	require.NoError(t, mr.Set(profileKey(1), "{not json"))

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Username)
	assert.Equal(t, 1, store.gets)
}

func TestProfileCache_NotFoundIsNotCached(t *testing.T) {
	repo, _, mr := setup(t)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.False(t, mr.Exists(profileKey(99)))
}

func TestProfileCache_RedisDown(t *testing.T) {
	repo, store, mr := setup(t)
	mr.Close()

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Username)
	assert.Equal(t, 1, store.gets)

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
