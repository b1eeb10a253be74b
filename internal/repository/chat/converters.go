package chat

import "bharatloads/internal/entities"

func ToDomain(c *ChatDB) *entities.Chat {
	if c == nil {
		return nil
	}
	return &entities.Chat{
		ID:            c.ID,
		ParticipantA:  c.ParticipantA,
		ParticipantB:  c.ParticipantB,
		LastMessageID: c.LastMessageID,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func ToMessageDomain(m *MessageDB) *entities.ChatMessage {
	if m == nil {
		return nil
	}
	return &entities.ChatMessage{
		ID:          m.ID,
		ChatID:      m.ChatID,
		SenderID:    m.SenderID,
		Content:     m.Content,
		MessageType: entities.MessageType(m.MessageType),
		BidID:       m.BidID,
		CreatedAt:   m.CreatedAt,
	}
}
