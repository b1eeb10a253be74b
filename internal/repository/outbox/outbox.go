package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"bharatloads/internal/entities"
)

// Repository таблица bid_events: строки пишутся в транзакции перехода
// статуса ставки, публикует их фоновый релей.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Append(ctx context.Context, event entities.BidEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository payload marshal error: %w", err)
	}

	query := `
		INSERT INTO bid_events (event_type, bid_id, recipient_id, payload)
		VALUES ($1, $2, $3, $4)
	`

	_, err = r.querier.Exec(
		ctx,
		query,
		event.EventType.String(),
		event.BidID,
		event.RecipientID,
		payload,
	)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository append error: %w", err)
	}

	return nil
}

// FetchUnpublished выбирает пачку неопубликованных событий в порядке
// записи. Вызывается внутри транзакции релея: FOR UPDATE SKIP LOCKED
// держит строки до коммита, параллельные релеи не делят одну пачку.
func (r *Repository) FetchUnpublished(ctx context.Context, limit int) ([]entities.BidEvent, error) {
	query := `
		SELECT id, event_type, bid_id, recipient_id, payload, created_at, published_at
		FROM bid_events
		WHERE published_at IS NULL
		ORDER BY id
		LIMIT $1
		FOR UPDATE SKIP LOCKED
	`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository fetch error: %w", err)
	}
	defer rows.Close()

	var events []entities.BidEvent
	for rows.Next() {
		var (
			event   entities.BidEvent
			rawType string
			payload []byte
		)
		err := rows.Scan(
			&event.ID,
			&rawType,
			&event.BidID,
			&event.RecipientID,
			&payload,
			&event.CreatedAt,
			&event.PublishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected outbox repository scan error: %w", err)
		}

		event.EventType = entities.BidEventType(rawType)
		if err := json.Unmarshal(payload, &event.Payload); err != nil {
			return nil, fmt.Errorf("unexpected outbox repository payload unmarshal error: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected outbox repository rows error: %w", err)
	}

	return events, nil
}

func (r *Repository) MarkPublished(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		UPDATE bid_events
		SET published_at = NOW()
		WHERE id = ANY($1)
	`

	_, err := r.querier.Exec(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository mark published error: %w", err)
	}

	return nil
}
