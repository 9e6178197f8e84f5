package message

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/metrics"
	"github.com/gdugdh24/roommate-backend/internal/repository"
	"go.uber.org/zap"
)

// MaxContentLength is counted in characters, not bytes.
const MaxContentLength = 2000

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	profileRepo repository.ProfileRepository
	logger      *zap.Logger
}

func NewMessageUseCase(
	messageRepo repository.MessageRepository,
	profileRepo repository.ProfileRepository,
	logger *zap.Logger,
) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// SendMessageRequest represents a direct message to another profile
type SendMessageRequest struct {
	ReceiverID int    `json:"receiverId" binding:"required,min=1"`
	Content    string `json:"content" binding:"required"`
}

// Send stores a message from senderID to the request's receiver
func (uc *MessageUseCase) Send(ctx context.Context, senderID int, req *SendMessageRequest) (*domain.Message, error) {
	if senderID == req.ReceiverID {
		return nil, domain.ErrCannotMessageSelf
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, domain.ErrEmptyMessage
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return nil, domain.ErrMessageTooLong
	}

	if _, err := uc.profileRepo.GetByID(ctx, req.ReceiverID); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    content,
	}
	if err := uc.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	metrics.MessagesSent.Inc()
	uc.logger.Debug("message sent",
		zap.Int("message_id", msg.ID),
		zap.Int("sender_id", senderID),
		zap.Int("receiver_id", req.ReceiverID),
	)
	return msg, nil
}

// Conversation marks everything the peer sent to userID as read and returns
// the full exchange, oldest first.
func (uc *MessageUseCase) Conversation(ctx context.Context, userID, peerID int) ([]*domain.Message, error) {
	if _, err := uc.profileRepo.GetByID(ctx, peerID); err != nil {
		return nil, err
	}

	if _, err := uc.messageRepo.MarkRead(ctx, peerID, userID); err != nil {
		return nil, fmt.Errorf("failed to mark messages read: %w", err)
	}

	messages, err := uc.messageRepo.GetConversation(ctx, userID, peerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return messages, nil
}

// Conversations lists the latest message per peer, newest first
func (uc *MessageUseCase) Conversations(ctx context.Context, userID int) ([]*domain.Conversation, error) {
	latest, err := uc.messageRepo.GetLatestPerPeer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversations: %w", err)
	}

	conversations := make([]*domain.Conversation, 0, len(latest))
	for _, msg := range latest {
		peerID, ok := msg.GetOtherUserID(userID)
		if !ok {
			continue
		}
		peer, err := uc.profileRepo.GetByID(ctx, peerID)
		if err != nil {
			if errors.Is(err, domain.ErrProfileNotFound) {
				uc.logger.Warn("conversation peer has no profile",
					zap.Int("user_id", userID),
					zap.Int("peer_id", peerID),
				)
				continue
			}
			return nil, fmt.Errorf("failed to get peer profile: %w", err)
		}
		conversations = append(conversations, &domain.Conversation{
			User:        peer,
			LastMessage: msg,
		})
	}
	return conversations, nil
}
