package repository

import (
	"context"

	"github.com/gdugdh24/roommate-backend/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	// GetConversation returns messages between the two users, oldest first.
	GetConversation(ctx context.Context, user1ID, user2ID int) ([]*domain.Message, error)
	// GetLatestPerPeer returns the newest message exchanged with each peer,
	// newest first.
	GetLatestPerPeer(ctx context.Context, userID int) ([]*domain.Message, error)
	MarkRead(ctx context.Context, senderID, receiverID int) (int64, error)
}
