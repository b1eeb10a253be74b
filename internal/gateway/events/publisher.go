package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bharatloads/internal/entities"
)

type Sender interface {
	Send(topic, key string, value []byte) error
}

// envelope формат сообщения в топике событий ставок.
type envelope struct {
	EventID     int64                    `json:"event_id"`
	EventType   string                   `json:"event_type"`
	BidID       string                   `json:"bid_id"`
	RecipientID string                   `json:"recipient_id"`
	Payload     entities.BidEventPayload `json:"payload"`
	CreatedAt   time.Time                `json:"created_at"`
}

// Publisher публикует события ставок в Kafka. Ключ партиционирования
// по получателю: события одного пользователя сохраняют порядок.
type Publisher struct {
	sender Sender
	topic  string
}

func NewPublisher(sender Sender, topic string) *Publisher {
	return &Publisher{
		sender: sender,
		topic:  topic,
	}
}

func (p *Publisher) Publish(_ context.Context, event entities.BidEvent) error {
	value, err := json.Marshal(envelope{
		EventID:     event.ID,
		EventType:   event.EventType.String(),
		BidID:       event.BidID,
		RecipientID: event.RecipientID,
		Payload:     event.Payload,
		CreatedAt:   event.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal bid event %d: %w", event.ID, err)
	}

	if err := p.sender.Send(p.topic, event.RecipientID, value); err != nil {
		return fmt.Errorf("publish bid event %d: %w", event.ID, err)
	}

	return nil
}
