package entities

import "time"

type Chat struct {
	ID            string
	ParticipantA  string
	ParticipantB  string
	LastMessageID *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasParticipant проверяет участие пользователя в переписке.
func (c Chat) HasParticipant(userID string) bool {
	return c.ParticipantA == userID || c.ParticipantB == userID
}

type ChatMessage struct {
	ID          string
	ChatID      string
	SenderID    string
	Content     string
	MessageType MessageType
	BidID       *string
	CreatedAt   time.Time
}

type MessageType string

const (
	MessageText        MessageType = "TEXT"
	MessageBidAccepted MessageType = "BID_ACCEPTED"
)

func (t MessageType) String() string {
	return string(t)
}
