package chat

import "time"

type ChatDB struct {
	ID            string
	ParticipantA  string
	ParticipantB  string
	LastMessageID *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type MessageDB struct {
	ID          string
	ChatID      string
	SenderID    string
	Content     string
	MessageType string
	BidID       *string
	CreatedAt   time.Time
}
