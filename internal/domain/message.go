package domain

import "time"

type Message struct {
	ID         int       `json:"id" db:"id"`
	SenderID   int       `json:"senderId" db:"sender_id"`
	ReceiverID int       `json:"receiverId" db:"receiver_id"`
	Content    string    `json:"content" db:"content"`
	Read       bool      `json:"read" db:"read"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

func (m *Message) HasUser(userID int) bool {
	return m.SenderID == userID || m.ReceiverID == userID
}

// GetOtherUserID returns the peer of userID in this message.
func (m *Message) GetOtherUserID(userID int) (int, bool) {
	if m.SenderID == userID {
		return m.ReceiverID, true
	}
	if m.ReceiverID == userID {
		return m.SenderID, true
	}
	return 0, false
}

// Conversation is the latest message exchanged with one peer.
type Conversation struct {
	User        *Profile `json:"user"`
	LastMessage *Message `json:"lastMessage"`
}
