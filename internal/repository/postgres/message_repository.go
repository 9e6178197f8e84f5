package postgres

import (
	"context"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	query := `
		INSERT INTO messages (sender_id, receiver_id, content, read)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query, message.SenderID, message.ReceiverID, message.Content, message.Read).
		Scan(&message.ID, &message.CreatedAt)
}

func (r *messageRepository) GetConversation(ctx context.Context, user1ID, user2ID int) ([]*domain.Message, error) {
	messages := []*domain.Message{}
	query := `
		SELECT id, sender_id, receiver_id, content, read, created_at
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at ASC, id ASC
	`
	err := r.db.SelectContext(ctx, &messages, query, user1ID, user2ID)
	return messages, err
}

func (r *messageRepository) GetLatestPerPeer(ctx context.Context, userID int) ([]*domain.Message, error) {
	messages := []*domain.Message{}
	query := `
		SELECT id, sender_id, receiver_id, content, read, created_at
		FROM (
			SELECT DISTINCT ON (CASE WHEN sender_id = $1 THEN receiver_id ELSE sender_id END)
			       id, sender_id, receiver_id, content, read, created_at
			FROM messages
			WHERE sender_id = $1 OR receiver_id = $1
			ORDER BY CASE WHEN sender_id = $1 THEN receiver_id ELSE sender_id END,
			         created_at DESC, id DESC
		) latest
		ORDER BY created_at DESC, id DESC
	`
	err := r.db.SelectContext(ctx, &messages, query, userID)
	return messages, err
}

func (r *messageRepository) MarkRead(ctx context.Context, senderID, receiverID int) (int64, error) {
	query := `UPDATE messages SET read = true WHERE sender_id = $1 AND receiver_id = $2 AND read = false`
	result, err := r.db.ExecContext(ctx, query, senderID, receiverID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
