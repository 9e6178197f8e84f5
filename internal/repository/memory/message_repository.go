package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/repository"
)

type MessageRepository struct {
	mu       sync.RWMutex
	messages []*domain.Message
	nextID   int
	now      func() time.Time
}

var _ repository.MessageRepository = (*MessageRepository)(nil)

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{nextID: 1, now: time.Now}
}

func (r *MessageRepository) Create(ctx context.Context, message *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	message.ID = r.nextID
	message.CreatedAt = r.now()
	r.nextID++

	stored := *message
	r.messages = append(r.messages, &stored)
	return nil
}

// GetConversation relies on insertion order, which is id order, as the
// tie-break for equal timestamps.
func (r *MessageRepository) GetConversation(ctx context.Context, user1ID, user2ID int) ([]*domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*domain.Message{}
	for _, m := range r.messages {
		if (m.SenderID == user1ID && m.ReceiverID == user2ID) ||
			(m.SenderID == user2ID && m.ReceiverID == user1ID) {
			c := *m
			out = append(out, &c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *MessageRepository) GetLatestPerPeer(ctx context.Context, userID int) ([]*domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	latest := make(map[int]*domain.Message)
	for _, m := range r.messages {
		peer, ok := m.GetOtherUserID(userID)
		if !ok {
			continue
		}
		cur, seen := latest[peer]
		if !seen || !m.CreatedAt.Before(cur.CreatedAt) {
			latest[peer] = m
		}
	}

	out := make([]*domain.Message, 0, len(latest))
	for _, m := range latest {
		c := *m
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, senderID, receiverID int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, m := range r.messages {
		if m.SenderID == senderID && m.ReceiverID == receiverID && !m.Read {
			m.Read = true
			n++
		}
	}
	return n, nil
}
