package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository_CreateAssignsIncreasingIDs(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()

	a := &domain.Profile{Username: "a"}
	b := &domain.Profile{Username: "b"}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	assert.ErrorIs(t, repo.Create(ctx, &domain.Profile{Username: "a"}), domain.ErrProfileAlreadyExists)
}

func TestProfileRepository_ReadsAreSnapshots(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()
	loc := "Powai"
	require.NoError(t, repo.Create(ctx, &domain.Profile{Username: "a", Location: &loc}))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	*got.Location = "Malad"

	again, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Powai", *again.Location)
}

func TestProfileRepository_GetAllOrderedByID(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()
	for _, name := range []string{"c", "a", "b", "d"} {
		require.NoError(t, repo.Create(ctx, &domain.Profile{Username: name}))
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i, p := range all {
		assert.Equal(t, i+1, p.ID)
	}

	byName, err := repo.GetByUsername(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 3, byName.ID)

	_, err = repo.GetByUsername(ctx, "zed")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestProfileRepository_Update(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &domain.Profile{Username: "a", FullName: "A"}))

	budget := 12000
	require.NoError(t, repo.Update(ctx, &domain.Profile{ID: 1, Username: "hijack", FullName: "A2", Budget: &budget}))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Username, "username is immutable")
	assert.Equal(t, "A2", got.FullName)
	assert.Equal(t, 12000, *got.Budget)

	assert.ErrorIs(t, repo.Update(ctx, &domain.Profile{ID: 42}), domain.ErrProfileNotFound)
}

func TestProfileRepository_ConcurrentWrites(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Create(ctx, &domain.Profile{Username: string(rune('A' + i))})
		}(i)
	}
	wg.Wait()

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}

func TestMessageRepository_Conversation(t *testing.T) {
	repo := NewMessageRepository()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	repo.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	require.NoError(t, repo.Create(ctx, &domain.Message{SenderID: 1, ReceiverID: 2, Content: "one"}))
	require.NoError(t, repo.Create(ctx, &domain.Message{SenderID: 2, ReceiverID: 1, Content: "two"}))
	require.NoError(t, repo.Create(ctx, &domain.Message{SenderID: 3, ReceiverID: 1, Content: "other"}))
	require.NoError(t, repo.Create(ctx, &domain.Message{SenderID: 1, ReceiverID: 2, Content: "three"}))

	conv, err := repo.GetConversation(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, conv, 3)
	assert.Equal(t, "one", conv[0].Content)
	assert.Equal(t, "three", conv[2].Content)

	latest, err := repo.GetLatestPerPeer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "three", latest[0].Content)
	assert.Equal(t, "other", latest[1].Content)

	n, err := repo.MarkRead(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.MarkRead(ctx, 1, 2)
	require.NoError(t, err)
	assert.Zero(t, n)
}
