package entities

import "time"

// BidEvent строка outbox: пишется в той же транзакции, что и переход
// статуса, публикуется в Kafka фоновым релеем (at-least-once).
type BidEvent struct {
	ID          int64
	EventType   BidEventType
	BidID       string
	RecipientID string
	Payload     BidEventPayload
	CreatedAt   time.Time
	PublishedAt *time.Time
}

type BidEventType string

const (
	EventBidPlaced   BidEventType = "BID_PLACED"
	EventBidAccepted BidEventType = "BID_ACCEPTED"
	EventBidRejected BidEventType = "BID_REJECTED"
)

func (t BidEventType) String() string {
	return string(t)
}

// BidEventPayload то, что уезжает получателю в пуше.
type BidEventPayload struct {
	BidType      string  `json:"bid_type"`
	MaterialType string  `json:"material_type"`
	Weight       float64 `json:"weight,omitempty"`
	Amount       float64 `json:"amount"`
	Source       string  `json:"source"`
	Destination  string  `json:"destination"`
	Reason       string  `json:"reason,omitempty"`
}
